package db_test

import (
	"transether/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("BadgerDB", func() {
	var store *db.BadgerDB

	BeforeEach(func() {
		var err error
		store, err = db.NewInMemoryBadgerDB(zap.NewNop().Sugar())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(store.Close()).To(Succeed())
	})

	It("returns ErrNotFound for a missing key", func() {
		_, err := store.Get("transactions")
		Expect(err).To(MatchError(db.ErrNotFound))
	})

	It("returns what was put", func() {
		Expect(store.Put("transactions", []byte(`[1]`))).To(Succeed())

		value, err := store.Get("transactions")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte(`[1]`)))
	})

	It("overwrites the previous value", func() {
		Expect(store.Put("transactions", []byte(`[1]`))).To(Succeed())
		Expect(store.Put("transactions", []byte(`[2,1]`))).To(Succeed())

		value, err := store.Get("transactions")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal([]byte(`[2,1]`)))
	})

	When("the store is reopened from disk", func() {
		It("keeps the value", func() {
			dir := GinkgoT().TempDir()
			logger := zap.NewNop().Sugar()

			onDisk, err := db.NewBadgerDB(logger, dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(onDisk.Put("transactions", []byte(`["a"]`))).To(Succeed())
			Expect(onDisk.Close()).To(Succeed())

			reopened, err := db.NewBadgerDB(logger, dir)
			Expect(err).NotTo(HaveOccurred())
			defer reopened.Close()

			value, err := reopened.Get("transactions")
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal([]byte(`["a"]`)))
		})
	})
})
