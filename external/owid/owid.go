package owid

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "owid"

	baseURL         = "https://raw.githubusercontent.com/owid/covid-19-data/master/public/data"
	VariantsURL     = baseURL + "/variants/covid-variants.csv"
	CasesURL        = baseURL + "/jhu/full_data.csv"
	VaccinationsURL = baseURL + "/vaccinations/vaccinations.csv"
)

var (
	ErrUnexpectedStatus = fmt.Errorf("unexpected response status")
	ErrEmptyLocation    = fmt.Errorf("empty source location")
)

// Source - interface to retrieve a raw csv dataset
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type httpSource struct {
	client *http.Client
	url    string
}

func (s httpSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, s.url, nil)
	if nil != err {
		return nil, err
	}

	resp, err := s.client.Do(req.WithContext(ctx))
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": s.url, "error": err}).Error("get dataset")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": s.url, "status": resp.StatusCode}).Error("get dataset")
		return nil, fmt.Errorf("%w: %s returns %d", ErrUnexpectedStatus, s.url, resp.StatusCode)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": s.url, "error": err}).Error("read dataset response")
		return nil, err
	}

	log.WithFields(log.Fields{"prefix": logPrefix, "url": s.url, "bytes": len(data)}).Debug("dataset downloaded")
	return data, nil
}

type fileSource struct {
	path string
}

func (s fileSource) Fetch(_ context.Context) ([]byte, error) {
	f, err := os.Open(s.path)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "path": s.path, "error": err}).Error("open dataset file")
		return nil, err
	}
	defer f.Close()

	return ioutil.ReadAll(f)
}

// NewHTTP - new dataset source served over http
func NewHTTP(url string, client *http.Client) Source {
	if client == nil {
		client = http.DefaultClient
	}

	return &httpSource{
		client: client,
		url:    url,
	}
}

// NewFile - new dataset source from a local csv file
func NewFile(path string) Source {
	return &fileSource{
		path: strings.TrimPrefix(path, "file://"),
	}
}

// New - pick a source by location, http(s) urls are downloaded and
// everything else is read from disk
func New(location string, client *http.Client) (Source, error) {
	switch {
	case location == "":
		return nil, ErrEmptyLocation
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTP(location, client), nil
	default:
		return NewFile(location), nil
	}
}
