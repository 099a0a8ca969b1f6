// Package loader reads datasets from a directory of record files.
//
// A dataset directory holds:
//
//	alec.alarms.<ext>       alarm state log (required)
//	alec.inventory.<ext>    inventory objects
//	alec.situations.<ext>   primary situation result set
//	<name>.situations.<ext> supplemental result sets, source = file name
//
// where <ext> is yaml, yml or json. An embedded sample dataset is always
// available through Sample.
package loader
