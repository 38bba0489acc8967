package common

// DefaultDataDir keeps the stores in the working directory when nothing else
// is configured.
const DefaultDataDir = "."
