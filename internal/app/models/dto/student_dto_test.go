package dto_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/srkad/placement-portal/internal/app/models/dto"
)

var _ = Describe("StringOrList", func() {
	decode := func(raw string) (dto.StringOrList, error) {
		var s dto.StringOrList
		err := json.Unmarshal([]byte(raw), &s)
		return s, err
	}

	It("accepts a JSON array", func() {
		s, err := decode(`["Go","SQL"]`)

		Expect(err).NotTo(HaveOccurred())
		Expect([]string(s)).To(Equal([]string{"Go", "SQL"}))
	})

	It("wraps a single JSON string", func() {
		s, err := decode(`"Go, SQL"`)

		Expect(err).NotTo(HaveOccurred())
		Expect([]string(s)).To(Equal([]string{"Go, SQL"}))
	})

	It("maps an empty string to no skills", func() {
		s, err := decode(`""`)

		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeEmpty())
	})

	It("rejects other JSON types", func() {
		_, err := decode(`42`)

		Expect(err).To(HaveOccurred())
	})
})
