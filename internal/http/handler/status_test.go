package handler_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhook/internal/http/handler"
)

var _ = Describe("StatusHandler", func() {
	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
	})

	DescribeTable("reports connection state and webhook path",
		func(connected bool, path, expected string) {
			router := gin.New()
			router.GET("/status", handler.NewStatusHandler(connected, path).Status)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(expected))
		},
		Entry("with a secret", true, "/webhook", `{"connected":true,"webhookPath":"/webhook"}`),
		Entry("without a secret", false, "/webhook", `{"connected":false,"webhookPath":"/webhook"}`),
		Entry("custom path", true, "/hooks/github", `{"connected":true,"webhookPath":"/hooks/github"}`),
	)
})
