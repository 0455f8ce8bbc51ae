// Package cdn derives image URLs for guild and user assets.
//
// A static URL is a deterministic function of (asset kind, owner id, asset
// hash) plus per-call size and format options. The animated variant is the
// one derivation that touches the network: a live probe against the gif URL
// decides between it and a static fallback.
package cdn
