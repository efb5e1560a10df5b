package discovery

import "sort"

// fuse deduplicates candidates by transport identity and ranks the result.
//
// Candidates sharing a dedup key are collapsed into one: confidence is the
// maximum across the group, each optional field takes the first non-empty
// value in original order, and notes are concatenated in original order with
// no attempt to deduplicate note text. The merged list is then stable-sorted
// by confidence descending, so equal-confidence candidates keep the
// scanner-then-discovery order they arrived in.
func fuse(cands []Candidate) []Candidate {
	byKey := make(map[string]int, len(cands))
	merged := make([]Candidate, 0, len(cands))

	for _, c := range cands {
		key := c.Transport.DedupKey()
		i, seen := byKey[key]
		if !seen {
			byKey[key] = len(merged)
			merged = append(merged, c)
			continue
		}

		m := &merged[i]
		if c.Confidence > m.Confidence {
			m.Confidence = c.Confidence
		}
		if m.DisplayName == "" {
			m.DisplayName = c.DisplayName
		}
		if m.Serial == "" {
			m.Serial = c.Serial
		}
		if m.VendorID == "" {
			m.VendorID = c.VendorID
		}
		if m.ProductID == "" {
			m.ProductID = c.ProductID
		}
		m.Notes = append(m.Notes, c.Notes...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})

	return merged
}
