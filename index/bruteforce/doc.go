// Package bruteforce provides a simple vector index that answers kNN queries
// by scanning all vectors and scoring via cosine similarity. Its binary form
// stores each vector as a vector.Encode BLOB so it can be kept alongside the
// vectors table.
package bruteforce
