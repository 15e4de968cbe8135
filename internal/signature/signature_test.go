package signature_test

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhook/internal/signature"
)

var _ = Describe("Verify", func() {
	const secret = "It's a Secret to Everybody"
	payload := []byte("Hello, World!")

	It("matches GitHub's documented sha256 test vector", func() {
		header := "sha256=757107ea0eb2509fc211221cce984b8a37570b6d7586c22c46f4379c8b043e17"
		Expect(signature.Sign(payload, secret, signature.SHA256)).To(Equal(header))
		Expect(signature.Verify(payload, header, secret)).To(BeTrue())
	})

	It("round-trips sign and verify for both algorithms", func() {
		for _, alg := range []signature.Algorithm{signature.SHA256, signature.SHA1} {
			header := signature.Sign(payload, secret, alg)
			Expect(header).To(HavePrefix(string(alg) + "="))
			Expect(signature.Verify(payload, header, secret)).To(BeTrue())
		}
	})

	It("fails when any single byte of the payload changes", func() {
		body := []byte(`{"ref":"refs/heads/main","commits":[]}`)
		header := signature.Sign(body, secret, signature.SHA256)

		for i := range body {
			tampered := append([]byte(nil), body...)
			tampered[i] ^= 0x01
			Expect(signature.Verify(tampered, header, secret)).To(BeFalse(), "byte %d", i)
		}
	})

	It("fails with the wrong secret", func() {
		header := signature.Sign(payload, "another secret", signature.SHA256)
		Expect(signature.Verify(payload, header, secret)).To(BeFalse())
	})

	DescribeTable("rejects unusable input",
		func(body []byte, header, key string) {
			Expect(signature.Verify(body, header, key)).To(BeFalse())
		},
		Entry("empty header", payload, "", secret),
		Entry("empty body", []byte{}, signature.Sign(payload, secret, signature.SHA256), secret),
		Entry("unconfigured secret", payload, signature.Sign(payload, secret, signature.SHA256), ""),
		Entry("unknown algorithm", payload, "md5=65a8e27d8879283831b664bd8b7f0ad4", secret),
		Entry("missing separator", payload, "sha256", secret),
		Entry("missing digest", payload, "sha256=", secret),
		Entry("bare digest", payload, strings.TrimPrefix(signature.Sign(payload, secret, signature.SHA256), "sha256="), secret),
		Entry("truncated digest", payload, signature.Sign(payload, secret, signature.SHA256)[:20], secret),
	)

	It("does not accept a sha1 digest under the sha256 label", func() {
		sha1Header := signature.Sign(payload, secret, signature.SHA1)
		relabelled := "sha256=" + strings.TrimPrefix(sha1Header, "sha1=")
		Expect(signature.Verify(payload, relabelled, secret)).To(BeFalse())
	})
})

var _ = Describe("PickHeader", func() {
	It("prefers X-Hub-Signature-256", func() {
		h := http.Header{}
		h.Set(signature.HeaderSHA1, "sha1=aaa")
		h.Set(signature.HeaderSHA256, "sha256=bbb")
		Expect(signature.PickHeader(h.Get)).To(Equal("sha256=bbb"))
	})

	It("falls back to X-Hub-Signature", func() {
		h := http.Header{}
		h.Set(signature.HeaderSHA1, "sha1=aaa")
		Expect(signature.PickHeader(h.Get)).To(Equal("sha1=aaa"))
	})

	It("returns empty when neither is present", func() {
		Expect(signature.PickHeader(http.Header{}.Get)).To(BeEmpty())
	})
})
