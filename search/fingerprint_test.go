package search

import "testing"

func TestFingerprint_SameDocsProduceSameFingerprint(t *testing.T) {
	docs := []Doc{
		{ID: "0", Fields: map[string]string{"name": "alpha", "desc": "first doc"}},
		{ID: "1", Fields: map[string]string{"name": "bravo", "desc": "second doc"}},
	}

	fp1 := computeFingerprint(docs)
	fp2 := computeFingerprint(docs)

	if fp1 != fp2 {
		t.Errorf("same docs produced different fingerprints: %s vs %s", fp1, fp2)
	}
	if fp1 == "" {
		t.Error("fingerprint is empty")
	}
}

func TestFingerprint_DifferentDocsProduceDifferentFingerprint(t *testing.T) {
	docs1 := []Doc{{ID: "0", Fields: map[string]string{"name": "alpha"}}}
	docs2 := []Doc{{ID: "1", Fields: map[string]string{"name": "bravo"}}}

	if computeFingerprint(docs1) == computeFingerprint(docs2) {
		t.Error("different docs produced same fingerprint")
	}
}

func TestFingerprint_OrderMatters(t *testing.T) {
	doc1 := Doc{ID: "0", Fields: map[string]string{"name": "alpha"}}
	doc2 := Doc{ID: "1", Fields: map[string]string{"name": "bravo"}}

	fp1 := computeFingerprint([]Doc{doc1, doc2})
	fp2 := computeFingerprint([]Doc{doc2, doc1})

	if fp1 == fp2 {
		t.Error("different order should produce different fingerprints")
	}
}

func TestFingerprint_FieldChangesChangeFingerprint(t *testing.T) {
	base := Doc{ID: "0", Fields: map[string]string{"name": "alpha", "desc": "text"}}
	baseFP := computeFingerprint([]Doc{base})

	variations := []Doc{
		{ID: "changed", Fields: base.Fields},
		{ID: base.ID, Fields: map[string]string{"name": "changed", "desc": "text"}},
		{ID: base.ID, Fields: map[string]string{"name": "alpha", "desc": "changed"}},
		{ID: base.ID, Fields: map[string]string{"name": "alpha"}},
		{ID: base.ID, Fields: map[string]string{"name": "alpha", "desc": "text", "extra": ""}},
	}

	for i, v := range variations {
		if computeFingerprint([]Doc{v}) == baseFP {
			t.Errorf("variation %d should produce different fingerprint from base", i)
		}
	}
}

func TestFingerprint_FieldOrderIndependent(t *testing.T) {
	// Map iteration order must not leak into the fingerprint; the same
	// fields always hash the same.
	doc := Doc{ID: "0", Fields: map[string]string{
		"alpha": "1", "bravo": "2", "charlie": "3", "delta": "4",
	}}

	fp := computeFingerprint([]Doc{doc})
	for range 20 {
		if computeFingerprint([]Doc{doc}) != fp {
			t.Fatal("fingerprint not stable across calls")
		}
	}
}

func TestFingerprint_EmptyDocs(t *testing.T) {
	fp := computeFingerprint([]Doc{})
	fp2 := computeFingerprint(nil)

	if fp != fp2 {
		t.Error("empty slice and nil should produce same fingerprint")
	}
	if fp == "" {
		t.Error("fingerprint should not be empty for empty docs")
	}
}
