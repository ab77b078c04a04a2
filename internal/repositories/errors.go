package repositories

import "errors"

// ErrNotFound возвращается, когда запись отсутствует в хранилище
var ErrNotFound = errors.New("data tidak ditemukan")
