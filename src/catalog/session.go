package catalog

import "sync"

// DefaultDataFile is the dataset the binaries load when no explicit file
// is given.
const DefaultDataFile = "data/cleaned_star_data.csv"

// Session memoizes one catalog load for the lifetime of the process.
// A failed load is memoized too: shells treat it as fatal for the
// session instead of retrying on every interaction.
type Session struct {
	path string
	once sync.Once
	cat  *Catalog
	err  error
}

func NewSession(path string) *Session { return &Session{path: path} }

// Path returns the dataset path this session reads from.
func (s *Session) Path() string { return s.path }

// Get loads the catalog on the first call and returns the same result on
// every later call.
func (s *Session) Get() (*Catalog, error) {
	s.once.Do(func() {
		s.cat, s.err = Load(s.path)
		if s.err != nil {
			Errorf("catalog load failed: %v", s.err)
			return
		}
		Infof("catalog ready: %d stars from %s", len(s.cat.Stars), s.path)
	})
	return s.cat, s.err
}
