// Package netsync shares level seeds between peers.
//
// Levels are never sent over the wire. One Authority decides the seed and
// configuration of each level and broadcasts them as a small JSON
// Announcement over websockets; every Peer rebuilds the identical level
// locally with Announcement.Generate.
//
// A peer that joins late receives the current announcement immediately.
// Peers whose writes fail or time out are dropped.
package netsync
