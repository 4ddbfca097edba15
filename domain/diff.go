package domain

// Diff returns the blocks whose fingerprints are not in prev, keeping
// the input (document) order.
func Diff(blocks []ContentBlock, prev Snapshot) []ContentBlock {
	seen := make(map[string]struct{}, len(prev.Hashes))
	for _, h := range prev.Hashes {
		seen[h] = struct{}{}
	}
	var out []ContentBlock
	for _, b := range blocks {
		if _, ok := seen[b.Fingerprint]; !ok {
			out = append(out, b)
		}
	}
	return out
}

// DedupeByFingerprint drops repeated fingerprints, keeping the first
// occurrence. Nested container scanning can emit the same text more
// than once; duplicate GUIDs within one feed document are invalid, so
// the dedup happens here rather than in the extractor.
func DedupeByFingerprint(blocks []ContentBlock) []ContentBlock {
	seen := make(map[string]struct{}, len(blocks))
	var out []ContentBlock
	for _, b := range blocks {
		if _, ok := seen[b.Fingerprint]; ok {
			continue
		}
		seen[b.Fingerprint] = struct{}{}
		out = append(out, b)
	}
	return out
}

// Fingerprints collects the unique fingerprints of blocks in first
// appearance order.
func Fingerprints(blocks []ContentBlock) []string {
	seen := make(map[string]struct{}, len(blocks))
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if _, ok := seen[b.Fingerprint]; ok {
			continue
		}
		seen[b.Fingerprint] = struct{}{}
		out = append(out, b.Fingerprint)
	}
	return out
}
