// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering SQL scalar
// functions that decode EMG sample BLOBs and run the gesture classifier.
package engine
