package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// uuidConverters let copier map uuid fields of read views onto string fields of responses.
var uuidConverters = []copier.TypeConverter{
	{
		SrcType: uuid.UUID{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	},
	{
		SrcType: &uuid.UUID{},
		DstType: ptrString,
		Fn: func(src any) (any, error) {
			id := src.(*uuid.UUID)
			if id == nil {
				return (*string)(nil), nil
			}
			s := id.String()
			return &s, nil
		},
	},
}

var ptrString *string
