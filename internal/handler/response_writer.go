package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/munnerz/goautoneg"
)

// MIMEProtobuf тип содержимого ответов в формате protobuf.
const MIMEProtobuf = "application/x-protobuf"

// ProtoMessage сообщение, которое умеет кодировать себя в protobuf.
type ProtoMessage interface {
	MarshalProto() []byte
}

// ResponseWriter записывает полностью собранный ответ web-сервиса.
type ResponseWriter interface {
	Write(c echo.Context, status int, msg ProtoMessage) error
}

// ProtoBufWriter пишет protobuf, если клиент его запросил в Accept с ненулевым q, иначе JSON.
type ProtoBufWriter struct{}

func NewProtoBufWriter() *ProtoBufWriter {
	return &ProtoBufWriter{}
}

func (w *ProtoBufWriter) Write(c echo.Context, status int, msg ProtoMessage) error {
	if acceptsProtobuf(c.Request().Header.Get(echo.HeaderAccept)) {
		return c.Blob(status, MIMEProtobuf, msg.MarshalProto())
	}
	return c.JSON(status, msg)
}

func acceptsProtobuf(header string) bool {
	for _, clause := range goautoneg.ParseAccept(header) {
		if clause.Type+"/"+clause.SubType == MIMEProtobuf {
			return clause.Q > 0
		}
	}
	return false
}
