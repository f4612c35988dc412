// Package engine provides helpers for working with the modernc.org/sqlite
// driver in this module: opening connections and registering the vec_* SQL
// scalar functions (vec_add, vec_dot, vec_cross, vec_angle, ...) that expose
// vector operations on BLOBs produced by vector.Encode.
package engine
