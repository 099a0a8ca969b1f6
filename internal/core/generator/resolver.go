package generator

import (
	"sort"
	"time"

	"alecviz/internal/domain"
)

const (
	// ClearedRetention is how long a cleared alarm stays visible
	ClearedRetention = 5 * time.Minute
	// StaleAfter hides alarms that have not changed for this long
	StaleAfter = 24 * time.Hour
)

// Resolver reconstructs the active alarms and situations at an instant
type Resolver struct {
	ids        []string
	histories  map[string][]domain.Alarm
	situations []domain.Situation
}

// NewResolver indexes the dataset's alarm log by alarm id
func NewResolver(ds *domain.Dataset) *Resolver {
	histories := make(map[string][]domain.Alarm)
	for _, a := range ds.Alarms() {
		histories[a.ID] = append(histories[a.ID], a)
	}

	ids := make([]string, 0, len(histories))
	for id, h := range histories {
		// stable: equal timestamps keep log order, so the later record wins
		sort.SliceStable(h, func(i, j int) bool { return h[i].Time < h[j].Time })
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Resolver{
		ids:        ids,
		histories:  histories,
		situations: ds.PrimarySituations(),
	}
}

// ActiveAlarmsAt returns the latest state of every alarm that is active at
// ts, ordered by alarm id. Only records strictly before ts are considered.
func (r *Resolver) ActiveAlarmsAt(ts int64) []domain.Alarm {
	var active []domain.Alarm
	for _, id := range r.ids {
		history := r.histories[id]
		n := sort.Search(len(history), func(i int) bool { return history[i].Time >= ts })
		if n == 0 {
			continue
		}
		last := history[n-1]
		age := absMillis(ts - last.Time)
		if last.Clear && age >= ClearedRetention.Milliseconds() {
			continue
		}
		if age >= StaleAfter.Milliseconds() {
			continue
		}
		active = append(active, last)
	}
	return active
}

// ActiveSituationsAt returns the primary situations active at ts
func (r *Resolver) ActiveSituationsAt(ts int64) []domain.Situation {
	return r.activeSituations(ts, alarmIDSet(r.ActiveAlarmsAt(ts)))
}

// activeSituations keeps primary situations created at or before ts that
// reference at least one active alarm, in dataset order.
func (r *Resolver) activeSituations(ts int64, activeIDs map[string]struct{}) []domain.Situation {
	var out []domain.Situation
	for _, s := range r.situations {
		if s.CreationTime > ts {
			continue
		}
		for _, id := range s.AlarmIDs {
			if _, ok := activeIDs[id]; ok {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func alarmIDSet(alarms []domain.Alarm) map[string]struct{} {
	set := make(map[string]struct{}, len(alarms))
	for _, a := range alarms {
		set[a.ID] = struct{}{}
	}
	return set
}

func absMillis(d int64) int64 {
	if d < 0 {
		return -d
	}
	return d
}
