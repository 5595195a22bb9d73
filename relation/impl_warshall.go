// SPDX-License-Identifier: MIT
// Package: relation
//
// Purpose:
//   - Canonical dense reachability (Warshall) kernel used by TransitiveClosure.
//   - In-place on a private working copy, O(n³) time, O(1) extra space.
//
// Contract:
//   - Loop order is fixed k → i → j. Later k see the updates of earlier k,
//     which makes one pass a fixed point rather than a single composition R∘R.
//   - The update is w[i][j] |= w[i][k] && w[k][j]. Both factors route through k.

package relation

// warshallInPlace closes w under transitivity. w must not be shared.
func warshallInPlace(w *Relation) {
	n := w.n
	data := w.data

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row offsets for k and i in the flat buffer
	)

	for k = 0; k < n; k++ { // outer: intermediate element k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source element i
			if !data[i*n+k] { // i cannot reach k,
				continue // so no j can be reached through k
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: target element j
				if data[baseK+j] {
					data[baseI+j] = true
				}
			}
		}
	}
}
