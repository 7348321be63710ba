package ticket_test

import (
	"encoding/binary"
	"path/filepath"

	"github.com/izanamador/mercadata/internal/ticket"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"
)

var _ = Describe("BoltDB", func() {
	var (
		dbPath string
		db     *ticket.BoltDB
		err    error
	)

	BeforeEach(func() {
		dbPath = filepath.Join(GinkgoT().TempDir(), "mercadata-test.db")
		db, err = ticket.NewBoltDB(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		db.Close()
	})

	Describe("ReadAll", func() {
		When("the store is empty", func() {
			It("returns no rows and no error", func() {
				items, readErr := db.ReadAll()
				Expect(readErr).NotTo(HaveOccurred())
				Expect(items).To(BeEmpty())
			})
		})

		When("rows have been written", func() {
			var written []ticket.Item

			BeforeEach(func() {
				written = []ticket.Item{
					testItem("1111", "01/03/2024 10:15", "TOMATE RAMA", "fruta", "1.38"),
					testItem("1111", "01/03/2024 10:15", "LECHE ENTERA", "lácteos", "0.99"),
				}
				Expect(db.ReplaceAll(written)).To(Succeed())
			})

			It("returns every row", func() {
				items, readErr := db.ReadAll()
				Expect(readErr).NotTo(HaveOccurred())
				Expect(items).To(HaveLen(2))
			})

			It("preserves insertion order", func() {
				items, readErr := db.ReadAll()
				Expect(readErr).NotTo(HaveOccurred())
				Expect(items[0].Description).To(Equal("TOMATE RAMA"))
				Expect(items[1].Description).To(Equal("LECHE ENTERA"))
			})

			It("round-trips prices exactly", func() {
				items, readErr := db.ReadAll()
				Expect(readErr).NotTo(HaveOccurred())
				Expect(items[0].Price.Equal(decimal.RequireFromString("1.38"))).To(BeTrue())
			})
		})

		When("a stored row is missing a required column", func() {
			BeforeEach(func() {
				// Simulate legacy data written without the category column.
				raw := []byte(`{"fecha":"01/03/2024 10:15","identificativo de ticket":"1111","ubicación":"MADRID","item":"TOMATE RAMA","precio":"1.38"}`)
				err = db.UpdateRawForTest(func(tx *bbolt.Tx) error {
					key := make([]byte, 8)
					binary.BigEndian.PutUint64(key, 0)
					return tx.Bucket([]byte(ticket.BucketNameForTest)).Put(key, raw)
				})
				Expect(err).NotTo(HaveOccurred())
			})

			It("reports the missing column", func() {
				_, readErr := db.ReadAll()
				Expect(readErr).To(HaveOccurred())

				var missing *ticket.MissingColumnError
				Expect(readErr).To(BeAssignableToTypeOf(missing))
				Expect(readErr.(*ticket.MissingColumnError).Column).To(Equal("categoría"))
			})
		})
	})

	Describe("ReplaceAll", func() {
		BeforeEach(func() {
			initial := []ticket.Item{
				testItem("1111", "01/03/2024 10:15", "TOMATE RAMA", "fruta", "1.38"),
			}
			Expect(db.ReplaceAll(initial)).To(Succeed())
		})

		It("replaces the whole set, never appends", func() {
			replacement := []ticket.Item{
				testItem("2222", "02/03/2024 09:00", "BANANA", "fruta", "1.10"),
			}
			Expect(db.ReplaceAll(replacement)).To(Succeed())

			items, readErr := db.ReadAll()
			Expect(readErr).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
			Expect(items[0].Description).To(Equal("BANANA"))
		})

		It("accepts an empty set", func() {
			Expect(db.ReplaceAll(nil)).To(Succeed())

			items, readErr := db.ReadAll()
			Expect(readErr).NotTo(HaveOccurred())
			Expect(items).To(BeEmpty())
		})
	})

	Describe("NewBoltDB", func() {
		It("fails on an unusable path", func() {
			_, newErr := ticket.NewBoltDB(filepath.Join(dbPath, "nested", "impossible.db"))
			Expect(newErr).To(HaveOccurred())
		})
	})
})
