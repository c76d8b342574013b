// Package plate turns raw text detections into validated license plate records.
//
// A detection produced by an OCR engine is a bounding polygon, a string and a
// confidence score. The pipeline in this package applies four pure steps to
// every detection of an image, in the order the detector returned them:
//
//  1. Correction: an ordered list of literal substring substitutions fixes
//     known systematic misreads (for example "I2" read instead of "12").
//  2. Admission: only corrected strings longer than the minimum length
//     (8 runes by default) are treated as plates; shorter fragments are
//     dropped without error.
//  3. Region resolution: the first two characters of the corrected string
//     are matched against the region code table. The first declared entry
//     wins; no match yields "Unknown".
//  4. Layout: label rectangles for the region name and the plate text are
//     placed above and below the detection, sized by an injected text
//     measurement capability.
//
// # Coordinate System
//
// Geometry uses image pixel coordinates with the origin at the top-left
// corner, X growing rightward and Y growing downward. Bounding polygons are
// always ordered top-left, top-right, bottom-right, bottom-left.
//
// # Configuration
//
// The correction rules and the region table are immutable values. Callers
// obtain fresh copies from DefaultCorrections and DefaultRegions and hand
// them to NewPipeline; nothing in this package holds mutable global state.
package plate
