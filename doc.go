// Package blockmul multiplies square matrices by cache-sized blocks.
//
// 🚀 What is blockmul?
//
//	A small, deterministic library (plus a CLI) for C = A × B where A and B
//	are n×n and the work is split into k×k tiles:
//		• Block accessor: copy a tile out of a matrix, write one back
//		• Block kernels: dense tile product and element-wise accumulate
//		• Blocked driver: sequential or tile-parallel, bit-identical results
//
// ✨ Why blocks?
//
//   - Three k×k tiles fit in cache where whole rows and columns do not
//   - Each output tile is independent, so tiles parallelize without locks
//   - Every block size that divides n gives the same product
//
// Under the hood, everything is organized under these packages:
//
//	matrix/           : Dense storage, GetBlock/SetBlock, Mul/Add, validators
//	blocked/          : the tiled driver: Multiply, MultiplyContext, MultiplyRows
//	internal/payload/ : JSON request/response wire format
//	cmd/blockmul/     : command line front end (multiply, info)
//
// Quick example (2×2, 1×1 blocks):
//
//	[1 2]   [5 6]   [19 22]
//	[3 4] × [7 8] = [43 50]
//
//	go get github.com/katalvlaran/blockmul/blocked
package blockmul
