package log

import (
	"time"

	"go.uber.org/zap"
)

// Field is an alias for zap.Field to avoid importing zap in other packages.
type Field = zap.Field

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func String(key string, val string) Field {
	return zap.String(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

func Ints(key string, val []int) Field {
	return zap.Ints(key, val)
}

func Error(err error) Field {
	return zap.Error(err)
}

func Any(key string, val any) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Conference fields, kept under fixed keys so log queries can join on them.

func CallID(id string) Field {
	return zap.String("call_id", id)
}

func ConfID(id string) Field {
	return zap.String("conf_id", id)
}

func Region(r int) Field {
	return zap.Int("region", r)
}

func EventType(t string) Field {
	return zap.String("event", t)
}
