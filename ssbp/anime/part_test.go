package anime

import (
	"testing"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/ssbptest"
	"badc0de.net/pkg/go-ssbp/ttesting"
)

func TestSplitReference(t *testing.T) {
	for _, tc := range []struct {
		name      string
		ref       string
		pack      string
		anim      string
		malformed bool
	}{
		{name: "pack and anime", ref: "PackName/AnimName", pack: "PackName", anim: "AnimName"},
		{name: "empty", ref: ""},
		{name: "no delimiter", ref: "PackName", malformed: true},
		{name: "empty anime", ref: "PackName/", pack: "PackName"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pack, anim, err := SplitReference(tc.ref)
			if tc.malformed {
				var mre *ssbp.MalformedReferenceError
				ttesting.AssertErrorAs(t, "malformed", err, &mre)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			ttesting.AssertEqualString(t, "pack", pack, tc.pack)
			ttesting.AssertEqualString(t, "anime", anim, tc.anim)
		})
	}
}

func TestDecodeParts(t *testing.T) {
	parts := []ssbptest.Part{
		{Name: "root", Type: ssbp.PART_TYPE_NULL, Parent: -1},
		{Name: "child", Type: ssbp.PART_TYPE_INSTANCE, Parent: 0, RefName: "other/walk"},
	}
	pack := mustDecodePack(t, parts, ssbptest.Clip{Name: SETUP_CLIP})
	ttesting.AssertEqualString(t, "pack name", pack.Name, "pack")
	ttesting.AssertEqualInt(t, "parts", len(pack.Parts), 2)
	ttesting.AssertEqualInt(t, "root parent", pack.Parts[0].ParentIndex, -1)
	ttesting.AssertEqualString(t, "root ref", pack.Parts[0].RefPack, "")

	child := pack.Parts[1]
	ttesting.AssertEqualString(t, "type", child.Type.String(), "instance")
	ttesting.AssertEqualString(t, "ref pack", child.RefPack, "other")
	ttesting.AssertEqualString(t, "ref anime", child.RefAnime, "walk")
	ttesting.AssertEqualInt(t, "index", child.Index, 1)
}

func TestDecodeMalformedReference(t *testing.T) {
	parts := []ssbptest.Part{
		{Name: "root", Type: ssbp.PART_TYPE_INSTANCE, Parent: -1, RefName: "walk"},
	}
	_, err := decodePack(t, parts, ssbptest.Clip{Name: SETUP_CLIP})
	var mre *ssbp.MalformedReferenceError
	ttesting.AssertErrorAs(t, "reference without delimiter", err, &mre)
}
