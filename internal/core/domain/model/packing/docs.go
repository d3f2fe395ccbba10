// Package packing models what goes into a container and where.
//
// An Item is a dimensioned unit of an order. Packing an item into a Container
// stores a PackedItem: an independent copy of the item bound to a Position
// and two display colours. Containers share fixed capacity constants and
// validate three rules before they can be closed:
//
//  1. the packed volume does not exceed ContainerVolume;
//  2. no packed item's position lies beyond the container length, height or depth;
//  3. no two packed items occupy intersecting regions.
//
// A closed container is read-only for good.
package packing
