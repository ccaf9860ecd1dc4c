package api

//go:generate oapi-codegen --package=api --generate=types,echo-server -o api.gen.go openapi.yaml
