// Package connect links the rooms of a level with corridors so that every
// room is reachable from every other.
//
// What:
//
//   - Candidates builds the candidate edge set: for every room centre, its
//     k nearest other centres by Manhattan distance, deduplicated and
//     undirected.
//   - SpanningTree grows a randomized spanning tree from room 0: candidate
//     edges are shuffled once, then the first edge with exactly one endpoint
//     in the tree is taken, until the tree is complete or stuck.
//   - Extras picks additional non-tree candidates from a shuffled pool to
//     create loops.
//   - Repair unions the carved edges and, while more than one component
//     remains, joins the closest pair of rooms that lie in different
//     components.
//   - Connect runs all of the above and carves each chosen edge as an L
//     corridor between the two room centres.
//
// Why:
//
//   - The spanning tree is not weight-minimal: ties are broken by shuffle
//     order. This keeps layouts identical for a given seed, at the price of
//     occasionally long corridors.
//   - k-NN candidates can leave a room isolated; Repair is the backstop that
//     makes global connectivity unconditional.
//
// Determinism:
//
//	Candidates and Repair draw nothing. SpanningTree and Extras shuffle
//	with the run's source; every carved corridor flips one coin. Sets are
//	only ever used for membership tests, never iterated.
//
// Complexity:
//
//   - Candidates: O(N² log N) for N rooms.
//   - SpanningTree: O(N × E) for E candidate edges.
//   - Repair: O(N²) per added edge, O(N³) worst case.
package connect
