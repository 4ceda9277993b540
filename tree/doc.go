/*
Package tree provides the in-memory building blocks of an incremental,
checkpointable note commitment tree: leaf positions, tree levels and node
addresses, the append-only frontier, the bridge that spans two witnessed
positions, and the legacy fixed-depth commitment tree layout.

It follows the same "functional primitives" style as the mmr package it grew
out of: small composable functions over binary tree arithmetic, no storage,
and a burden of knowledge on the caller for the hot paths.

# Addresses

A node of the perfect binary tree is identified by its level above the leaves
and its index within that level.

	3                 (3,0)
	            /              \
	2       (2,0)              (2,1)
	       /     \            /     \
	1   (1,0)   (1,1)     (1,2)    (1,3)
	    /  \    /  \      /  \     /  \
	0  0    1  2    3    4    5   6    7

The ancestor of leaf position p at level l is (l, p >> l) and the sibling of
(l, i) is (l, i ^ 1). Everything else in this package is derived from those
two rules.

# Frontiers

A frontier records the most recently appended leaf, its position, and the
"ommers": the roots of the complete subtrees to the left of the leaf's path.
There is exactly one ommer for every set bit of the position, ordered from the
lowest level upwards. So for position 5 (binary 101),

	2       (2,0)*
	       /     \
	1   (1,0)   (1,1)
	    /  \    /  \
	0  0    1  4*   5  <- leaf

the ommers are [H(4), H(2,0)].

# Bridges

A bridge carries everything needed to extend the witness of a marked leaf
from one checkpoint to the next without retaining the leaves in between: the
position it starts from, the addresses of the subtrees still being completed
("tracking") and the sibling values already observed on the way ("ommers").
Fusing consecutive bridges and witnessing against the frontier of the first
reproduces the authentication path of the marked leaf.

Marking, checkpointing, rewinding and retiring bridges are the business of
the tree engine that owns the live state. This package only models and
reads the state that engine serializes.
*/
package tree
