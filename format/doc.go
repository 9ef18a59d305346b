// Package format enumerates the document formats dx reads and writes.
package format
