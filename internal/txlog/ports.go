package txlog

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}
