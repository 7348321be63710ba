package parsing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ExtractItems", func() {
	var (
		text       string
		candidates []Candidate
	)

	JustBeforeEach(func() {
		candidates = ExtractItems(text)
	})

	When("the text contains a single product entry", func() {
		BeforeEach(func() {
			text = "2 TOMATE RAMA 1,38"
		})

		It("yields one candidate", func() {
			Expect(candidates).To(HaveLen(1))
		})

		It("trims the description", func() {
			Expect(candidates[0].Description).To(Equal("TOMATE RAMA"))
		})

		It("keeps the raw price token", func() {
			Expect(candidates[0].Price).To(Equal("1,38"))
		})
	})

	When("the text mixes products with totals and payment lines", func() {
		BeforeEach(func() {
			text = "2 TOMATE RAMA 1,38\n" +
				"1 LECHE ENTERA 0,99\n" +
				"TOTAL (€) 2,37\n" +
				"1 TARJETA BANCARIA 2,37\n"
		})

		It("keeps only the product entries", func() {
			Expect(candidates).To(HaveLen(2))
		})

		It("preserves source order", func() {
			Expect(candidates[0].Description).To(Equal("TOMATE RAMA"))
			Expect(candidates[1].Description).To(Equal("LECHE ENTERA"))
		})
	})

	When("a candidate description is payment metadata", func() {
		BeforeEach(func() {
			text = "1 MASTERCARD 12,50"
		})

		It("rejects it", func() {
			Expect(candidates).To(BeEmpty())
		})
	})

	When("a description contains a lone noise code as a field", func() {
		BeforeEach(func() {
			text = "1 IVA 0,50"
		})

		It("rejects it", func() {
			Expect(candidates).To(BeEmpty())
		})
	})

	When("a product name merely contains a noise code's letters", func() {
		BeforeEach(func() {
			text = "1 YOGUR GRIEGO 1,75"
		})

		It("keeps it", func() {
			Expect(candidates).To(HaveLen(1))
			Expect(candidates[0].Description).To(Equal("YOGUR GRIEGO"))
		})
	})

	When("the text has no product entries", func() {
		BeforeEach(func() {
			text = "SE ADMITEN DEVOLUCIONES CON TICKET\nTELÉFONO: 917778899"
		})

		It("yields no candidates", func() {
			Expect(candidates).To(BeEmpty())
		})
	})
})

var _ = Describe("noise tokens end to end", func() {
	It("never yields a candidate from a line holding only a noise token", func() {
		for _, token := range noiseTokens {
			Expect(ExtractItems(token)).To(BeEmpty(), "token %q", token)
		}
	})
})

var _ = Describe("IsNoise", func() {
	It("matches every noise token standing alone", func() {
		for _, token := range noiseTokens {
			Expect(IsNoise(token)).To(BeTrue(), "token %q", token)
		}
	})

	It("does not match a plain product description", func() {
		Expect(IsNoise("TOMATE RAMA")).To(BeFalse())
	})

	It("matches multi-word boilerplate inside a longer description", func() {
		Expect(IsNoise("SE ADMITEN DEVOLUCIONES CON TICKET HASTA")).To(BeTrue())
	})
})
