// Package table converts between the recipe store and the tabular
// interchange layout: a header row Judul,Bahan,Langkah,Waktu followed by one
// row per recipe.
//
// Import validates the whole table before touching the store, so a failed
// import leaves the store exactly as it was. Line numbers reported in
// ROW_SHAPE and ROW_VALUE errors count the header as line 1.
//
// Reading and writing the bytes of a table is done by pkg/serializer.
package table
