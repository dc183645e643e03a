package ports

type IDGenerator interface {
	Next() int64
}
