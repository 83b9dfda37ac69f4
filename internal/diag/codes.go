package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Разрешение имён FEEL
	FeelInfo            Code = 3000
	FeelUnknownVariable Code = 3001
	FeelUnknownType     Code = 3004

	// Сценарии и конфигурация
	IOLoadFileError  Code = 4001
	IOScenarioSyntax Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	FeelInfo:            "FEEL resolution information",
	FeelUnknownVariable: "Unknown variable",
	FeelUnknownType:     "Unknown type name",
	IOLoadFileError:     "I/O load file error",
	IOScenarioSyntax:    "Malformed scenario",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FEEL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
