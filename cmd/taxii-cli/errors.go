package main

import "errors"

var (
	errNoDatabase = errors.New("no database connection")
	errNoAPIRoot  = errors.New("no api root with this title or id")
)
