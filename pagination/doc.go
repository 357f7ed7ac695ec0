// Package pagination builds offset and cursor pagination metadata, the page
// option schemas clients send, and the page envelopes returned to them.
package pagination
