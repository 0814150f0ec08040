package repositories

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("buildSearchQuery", func() {
	It("ORs skill tokens together", func() {
		query, args := buildSearchQuery([]string{"go", "sql"}, "")

		Expect(query).To(ContainSubstring("WHERE 1=1 AND (LOWER(skills) LIKE $1 OR LOWER(skills) LIKE $2)"))
		Expect(query).To(HaveSuffix("ORDER BY first_name"))
		Expect(args).To(Equal([]any{"%go%", "%sql%"}))
	})

	It("matches the domain as a single substring", func() {
		query, args := buildSearchQuery(nil, "backend")

		Expect(query).To(ContainSubstring("WHERE 1=1 AND LOWER(domain) LIKE $1"))
		Expect(args).To(Equal([]any{"%backend%"}))
	})

	It("combines skills and domain with OR, not AND", func() {
		query, args := buildSearchQuery([]string{"go"}, "backend")

		Expect(query).To(ContainSubstring("AND ((LOWER(skills) LIKE $1) OR LOWER(domain) LIKE $2)"))
		Expect(args).To(Equal([]any{"%go%", "%backend%"}))
	})

	It("numbers placeholders after the skill tokens", func() {
		query, args := buildSearchQuery([]string{"go", "docker", "k8s"}, "cloud")

		Expect(query).To(ContainSubstring("LOWER(domain) LIKE $4"))
		Expect(args).To(HaveLen(4))
		Expect(args[3]).To(Equal("%cloud%"))
	})

	It("passes LIKE wildcards through unescaped", func() {
		_, args := buildSearchQuery([]string{"c%"}, "")

		Expect(args).To(Equal([]any{"%c%%"}))
	})

	It("selects everything ordered by first name when both inputs are empty", func() {
		query, args := buildSearchQuery(nil, "")

		Expect(query).To(ContainSubstring("WHERE 1=1 ORDER BY first_name"))
		Expect(args).To(BeEmpty())
	})
})
