package txlog_test

import (
	"encoding/json"
	"errors"

	"transether/internal/db"
	"transether/internal/txlog"
	"transether/internal/txlog/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Log", func() {
	var (
		fakeStore  *fake.Store
		fakeLogger *zap.SugaredLogger
		fakeErr    error
		log        *txlog.Log
		first      txlog.Record
		second     txlog.Record
	)

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		fakeLogger = zap.NewNop().Sugar()
		fakeErr = errors.New("fake error")

		first = txlog.Record{From: "0xA", To: "0xB", Amount: "1", Timestamp: "1/2/2026, 3:04:05 PM"}
		second = txlog.Record{From: "0xA", To: "0xC", Amount: "0.5", Timestamp: "1/2/2026, 3:05:00 PM"}
	})

	Describe("Load", func() {
		JustBeforeEach(func() {
			log = txlog.Load(fakeLogger, fakeStore)
		})

		When("nothing was persisted", func() {
			BeforeEach(func() {
				fakeStore.GetReturns(nil, db.ErrNotFound)
			})

			It("should start empty", func() {
				Expect(log.All()).To(BeEmpty())
				Expect(fakeStore.GetCallCount()).To(Equal(1))
				Expect(fakeStore.GetArgsForCall(0)).To(Equal(txlog.StorageKey))
			})
		})

		When("the stored value is corrupt", func() {
			BeforeEach(func() {
				fakeStore.GetReturns([]byte("{not json"), nil)
			})

			It("should start empty", func() {
				Expect(log.All()).To(BeEmpty())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.GetReturns(nil, fakeErr)
			})

			It("should start empty", func() {
				Expect(log.All()).To(BeEmpty())
			})
		})

		When("the stored value is JSON null", func() {
			BeforeEach(func() {
				fakeStore.GetReturns([]byte("null"), nil)
			})

			It("should start empty", func() {
				Expect(log.All()).NotTo(BeNil())
				Expect(log.All()).To(BeEmpty())
			})
		})

		When("records were persisted", func() {
			BeforeEach(func() {
				data, err := json.Marshal([]txlog.Record{second, first})
				Expect(err).NotTo(HaveOccurred())
				fakeStore.GetReturns(data, nil)
			})

			It("should restore them in order", func() {
				Expect(log.All()).To(Equal([]txlog.Record{second, first}))
			})
		})
	})

	Describe("Append", func() {
		var err error

		BeforeEach(func() {
			fakeStore.GetReturns(nil, db.ErrNotFound)
			log = txlog.Load(fakeLogger, fakeStore)
		})

		When("the store accepts the write", func() {
			JustBeforeEach(func() {
				Expect(log.Append(first)).To(Succeed())
				err = log.Append(second)
			})

			It("should prepend and rewrite the whole log", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(log.All()).To(Equal([]txlog.Record{second, first}))

				Expect(fakeStore.PutCallCount()).To(Equal(2))
				key, data := fakeStore.PutArgsForCall(1)
				Expect(key).To(Equal(txlog.StorageKey))

				var persisted []txlog.Record
				Expect(json.Unmarshal(data, &persisted)).To(Succeed())
				Expect(persisted).To(Equal(log.All()))
			})
		})

		When("the store rejects the write", func() {
			BeforeEach(func() {
				fakeStore.PutReturnsOnCall(1, fakeErr)
			})

			JustBeforeEach(func() {
				Expect(log.Append(first)).To(Succeed())
				err = log.Append(second)
			})

			It("should return the error and keep the previous state", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(log.All()).To(Equal([]txlog.Record{first}))
			})
		})
	})

	Describe("All", func() {
		It("should return a copy", func() {
			fakeStore.GetReturns(nil, db.ErrNotFound)
			log = txlog.Load(fakeLogger, fakeStore)
			Expect(log.Append(first)).To(Succeed())

			records := log.All()
			records[0].Amount = "999"

			Expect(log.All()[0].Amount).To(Equal("1"))
		})
	})

	Describe("durability", func() {
		var store *db.BadgerDB

		BeforeEach(func() {
			var err error
			store, err = db.NewInMemoryBadgerDB(fakeLogger)
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(store.Close()).To(Succeed())
		})

		It("should reproduce the in-memory log when reloaded", func() {
			log = txlog.Load(fakeLogger, store)
			Expect(log.Append(first)).To(Succeed())
			Expect(log.Append(second)).To(Succeed())

			reloaded := txlog.Load(fakeLogger, store)
			Expect(reloaded.All()).To(Equal(log.All()))
			Expect(reloaded.All()).To(HaveLen(2))
		})
	})
})
