package gormtestsupport

import (
	"os"

	"github.com/fabric8-services/fabric8-fieldsignals/configuration"
	"github.com/fabric8-services/fabric8-fieldsignals/log"
	"github.com/fabric8-services/fabric8-fieldsignals/resource"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite driver for the in-memory fallback
	"github.com/stretchr/testify/suite"
)

var _ suite.SetupAllSuite = &DBTestSuite{}
var _ suite.TearDownAllSuite = &DBTestSuite{}

// NewDBTestSuite instantiates a new DBTestSuite
func NewDBTestSuite() DBTestSuite {
	return DBTestSuite{}
}

// DBTestSuite is a base for tests using a gorm db. When the environment
// variable named by resource.Database is set the suite runs against the
// Postgres instance described by the configuration; otherwise it runs
// against a private in-memory SQLite database so that the suite can be
// executed without any infrastructure.
type DBTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupSuite implements suite.SetupAllSuite
func (s *DBTestSuite) SetupSuite() {
	if err := configuration.Setup(""); err != nil {
		log.Panic(nil, map[string]interface{}{
			"err": err,
		}, "failed to setup the configuration")
	}
	log.InitializeLogger(configuration.IsDeveloperModeEnabled())

	var err error
	if _, c := os.LookupEnv(resource.Database); c {
		s.DB, err = gorm.Open("postgres", configuration.GetPostgresConfigString())
		if err != nil {
			log.Panic(nil, map[string]interface{}{
				"err":             err,
				"postgres_config": configuration.GetPostgresConfigString(),
			}, "failed to connect to the database")
		}
	} else {
		s.DB, err = gorm.Open("sqlite3", ":memory:")
		if err != nil {
			log.Panic(nil, map[string]interface{}{
				"err": err,
			}, "failed to open the in-memory database")
		}
		// the in-memory database lives in exactly one connection
		s.DB.DB().SetMaxOpenConns(1)
	}
	s.DB.LogMode(false)
}

// TearDownSuite implements suite.TearDownAllSuite
func (s *DBTestSuite) TearDownSuite() {
	if s.DB != nil {
		_ = s.DB.Close()
	}
}
