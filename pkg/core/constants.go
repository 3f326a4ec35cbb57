package core

// Tolerance is the epsilon used for floating point comparisons throughout
// the tracer: parallel-ray tests, antiparallel alignment detection, and the
// self-intersection offset applied to secondary rays.
const Tolerance = 0.00001
