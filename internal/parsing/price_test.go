package parsing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("ParsePrice", func() {
	When("parsing a comma-decimal token", func() {
		It("returns the value with two fractional digits", func() {
			price, err := ParsePrice("1,38")
			Expect(err).NotTo(HaveOccurred())
			Expect(price.Equal(decimal.RequireFromString("1.38"))).To(BeTrue())
		})
	})

	When("parsing a value with extra precision", func() {
		It("rounds half to even", func() {
			price, err := ParsePrice("2,125")
			Expect(err).NotTo(HaveOccurred())
			Expect(FormatPrice(price)).To(Equal("2.12"))

			price, err = ParsePrice("2,135")
			Expect(err).NotTo(HaveOccurred())
			Expect(FormatPrice(price)).To(Equal("2.14"))
		})
	})

	When("parsing a formatted price", func() {
		It("round-trips", func() {
			original, err := ParsePrice("12,07")
			Expect(err).NotTo(HaveOccurred())

			parsed, err := ParsePrice(FormatPrice(original))
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Equal(original)).To(BeTrue())
		})
	})

	When("parsing garbage", func() {
		It("returns the error", func() {
			_, err := ParsePrice("abc")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("parsing price"))
		})
	})

	When("parsing a negative value", func() {
		It("returns the error", func() {
			_, err := ParsePrice("-1,00")
			Expect(err).To(HaveOccurred())
		})
	})
})
