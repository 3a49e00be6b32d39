package geometry

// Epsilon is the tolerance used for floating-point comparisons.
const Epsilon = 1e-6
