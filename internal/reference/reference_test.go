package reference_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhook/internal/reference"
)

func closing(key string) reference.Reference {
	return reference.Reference{TaskKey: key, IsClosing: true}
}

func mention(key string) reference.Reference {
	return reference.Reference{TaskKey: key}
}

var _ = Describe("Extract", func() {
	It("separates closing and non-closing references", func() {
		Expect(reference.Extract("fix PROJ-9 and mention PROJ-10")).To(Equal([]reference.Reference{
			closing("PROJ-9"),
			mention("PROJ-10"),
		}))
	})

	It("ignores lower-case keys", func() {
		Expect(reference.Extract("closes proj-1")).To(BeEmpty())
	})

	It("returns nothing for text without keys", func() {
		Expect(reference.Extract("")).To(BeNil())
		Expect(reference.Extract("refactor the retry loop")).To(BeNil())
	})

	DescribeTable("recognises every closing keyword in any case",
		func(keyword string) {
			Expect(reference.Extract(keyword + " ABC-7")).To(Equal([]reference.Reference{closing("ABC-7")}))
		},
		Entry("close", "close"),
		Entry("closes", "closes"),
		Entry("closed", "closed"),
		Entry("fix", "fix"),
		Entry("fixes", "fixes"),
		Entry("fixed", "fixed"),
		Entry("resolve", "resolve"),
		Entry("resolves", "resolves"),
		Entry("resolved", "resolved"),
		Entry("Fixes", "Fixes"),
		Entry("CLOSES", "CLOSES"),
		Entry("ReSoLvEd", "ReSoLvEd"),
	)

	It("emits one reference per span, never a closing and a bare copy", func() {
		refs := reference.Extract("closes PROJ-1")
		Expect(refs).To(HaveLen(1))
		Expect(refs[0]).To(Equal(closing("PROJ-1")))
	})

	It("keeps duplicates in text order", func() {
		Expect(reference.Extract("PROJ-1 then fixes PROJ-1 and PROJ-1")).To(Equal([]reference.Reference{
			mention("PROJ-1"),
			closing("PROJ-1"),
			mention("PROJ-1"),
		}))
	})

	It("only treats the key directly after the keyword as closing", func() {
		Expect(reference.Extract("closes PROJ-1, PROJ-2")).To(Equal([]reference.Reference{
			closing("PROJ-1"),
			mention("PROJ-2"),
		}))
	})

	It("allows any single whitespace run between keyword and key", func() {
		Expect(reference.Extract("resolves \t\n  OPS-42")).To(Equal([]reference.Reference{closing("OPS-42")}))
	})

	It("does not treat keywords glued to other words as closing", func() {
		Expect(reference.Extract("prefix PROJ-3")).To(Equal([]reference.Reference{mention("PROJ-3")}))
		Expect(reference.Extract("fixing PROJ-3")).To(Equal([]reference.Reference{mention("PROJ-3")}))
		Expect(reference.Extract("fixes:PROJ-3")).To(Equal([]reference.Reference{mention("PROJ-3")}))
	})

	It("requires the key to stand alone as a word", func() {
		Expect(reference.Extract("abcPROJ-3 PROJ-4x")).To(BeNil())
		Expect(reference.Extract("feature/PROJ-5-retry (PROJ-6).")).To(Equal([]reference.Reference{
			mention("PROJ-5"),
			mention("PROJ-6"),
		}))
	})

	It("handles multi-line commit messages", func() {
		msg := "Add retry logic\n\nCloses PROJ-1\nSee also WEB-20"
		Expect(reference.Extract(msg)).To(Equal([]reference.Reference{
			closing("PROJ-1"),
			mention("WEB-20"),
		}))
	})

	It("is restartable", func() {
		text := "fix A-1 B-2"
		Expect(reference.Extract(text)).To(Equal(reference.Extract(text)))
	})
})
