package db_test

import (
	"database/sql"

	"transether/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("GormDB", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Get", func() {
		When("the entry exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "txlog_entries" WHERE name = \$1 ORDER BY "txlog_entries"\."name" LIMIT \$2.*`).
					WithArgs("transactions", 1).
					WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).
						AddRow("transactions", `[{"from":"0x1"}]`))
			})

			It("should return the stored value", func() {
				value, err := testDB.Get("transactions")
				Expect(err).NotTo(HaveOccurred())
				Expect(string(value)).To(Equal(`[{"from":"0x1"}]`))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the entry is missing", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "txlog_entries" WHERE name = \$1.*`).
					WithArgs("transactions", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				_, err := testDB.Get("transactions")
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "txlog_entries" WHERE name = \$1.*`).
					WithArgs("transactions", 1).
					WillReturnError(sql.ErrConnDone)
			})

			It("should wrap the error", func() {
				_, err := testDB.Get("transactions")
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(err).To(MatchError(ContainSubstring(`getting entry "transactions"`)))
			})
		})
	})

	Describe("Put", func() {
		When("the upsert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "txlog_entries" \("name","value"\) VALUES \(\$1,\$2\) ON CONFLICT \("name"\) DO UPDATE SET "value"="excluded"\."value"`).
					WithArgs("transactions", "[]").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should write the value", func() {
				Expect(testDB.Put("transactions", []byte("[]"))).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "txlog_entries".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return the error", func() {
				err := testDB.Put("transactions", []byte("[]"))
				Expect(err).To(MatchError(sql.ErrConnDone))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
