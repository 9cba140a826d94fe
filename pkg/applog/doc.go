// Package applog wraps zerolog with the tick-oriented logging shape this
// engine needs: a handful of named fields (run ID, component, counts)
// attached to structured events rather than freeform printf output. A
// Config (level/format/output) builds a Logger; WithField/WithFields
// derive child loggers, and a package-global default serves call sites
// that don't carry their own logger around.
package applog
