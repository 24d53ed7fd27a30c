package xxh

// SpecVersion identifies the revision of the xxHash specification this
// module implements. The algorithms are frozen; this constant replaces
// the version query a native-library binding would expose.
const SpecVersion = "0.8.2"
