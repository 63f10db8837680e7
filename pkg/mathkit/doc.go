// Package mathkit gathers every compiled math namespace behind one import.
//
// The basic namespaces (arithmetic, constants, numutil) are always present.
// The others are compiled only when their build tag is set:
//
//	go build -tags advanced      // Pow, GCD, LCM, roots, logarithms, hyperbolics
//	go build -tags statistics    // Mean, Median, Mode, Variance, ...
//	go build -tags trigonometry  // Sin, Asin, DegToRad, Csc, ...
//	go build -tags full          // all of the above
//
// A namespace whose tag is absent is not hidden but missing: referencing one
// of its identifiers is a compile error. Features reports what was compiled.
package mathkit
