package core

// Eps is the double-precision machine epsilon. It is the additive floor
// applied before every log in the estimators so coincident points and empty
// bins produce extreme-but-finite values instead of -Inf.
const Eps = 0x1p-52
