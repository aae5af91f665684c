package smooth

// blendEpsilon is the shortest quaternion blend that is still normalised;
// anything shorter falls back to the target rotation.
const blendEpsilon = 1e-9
