package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhook/cmd/taskhook/commands"
	"basegraph.app/taskhook/internal/signature"
)

func run(stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.Writer = &out
	cmd.ErrWriter = &out
	cmd.Reader = strings.NewReader(stdin)
	err := cmd.Run(context.Background(), append([]string{"taskhook"}, args...))
	return out.String(), err
}

var _ = Describe("taskhook CLI", func() {
	Describe("extract", func() {
		It("prints each reference with its action", func() {
			out, err := run("", "extract", "fixes PROJ-1,", "see", "PROJ-2")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal("PROJ-1\tclose\nPROJ-2\tlink\n"))
		})

		It("prints JSON on request", func() {
			out, err := run("", "extract", "--json", "Closes OPS-7")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(MatchJSON(`[{"task_key":"OPS-7","is_closing":true}]`))
		})

		It("says so when nothing matches", func() {
			out, err := run("", "extract", "proj-1 is lower case")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal("no task references\n"))
		})
	})

	Describe("sign", func() {
		var payload string

		BeforeEach(func() {
			payload = filepath.Join(GinkgoT().TempDir(), "push.json")
			Expect(os.WriteFile(payload, []byte(`{"zen":"hi"}`), 0o600)).To(Succeed())
		})

		It("signs a file with sha256", func() {
			out, err := run("", "sign", "--secret", "s3cret", payload)
			Expect(err).ToNot(HaveOccurred())

			expected := signature.Sign([]byte(`{"zen":"hi"}`), "s3cret", signature.SHA256)
			Expect(out).To(Equal("X-Hub-Signature-256: " + expected + "\n"))
		})

		It("signs stdin with sha1", func() {
			out, err := run(`{"zen":"hi"}`, "sign", "-s", "s3cret", "-a", "sha1", "-")
			Expect(err).ToNot(HaveOccurred())

			header := strings.TrimPrefix(strings.TrimSpace(out), signature.HeaderSHA1+": ")
			Expect(signature.Verify([]byte(`{"zen":"hi"}`), header, "s3cret")).To(BeTrue())
		})

		It("rejects unknown algorithms", func() {
			_, err := run("", "sign", "--secret", "s3cret", "--algorithm", "md5", payload)
			Expect(err).To(MatchError(ContainSubstring("unsupported algorithm")))
		})

		It("requires a payload argument", func() {
			_, err := run("", "sign", "--secret", "s3cret")
			Expect(err).To(MatchError(ContainSubstring("payload file is required")))
		})
	})
})
