package overlap

// minNewSamples is the floor applied to the insert path's newSamples so
// that the driver always advances its read cursor (see Insert's doc comment
// on the zero-newSamples corner case).
const minNewSamples = 1
