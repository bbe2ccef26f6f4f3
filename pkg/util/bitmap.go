package util

import (
	"github.com/RoaringBitmap/roaring"
)

// AcquireBitmap create a bitmap
func AcquireBitmap(values ...uint32) *roaring.Bitmap {
	return roaring.BitmapOf(values...)
}

// BMAnd bitmap and, the inputs are not modified
func BMAnd(bms ...*roaring.Bitmap) *roaring.Bitmap {
	var value *roaring.Bitmap
	for _, bm := range bms {
		if value == nil {
			value = bm.Clone()
		} else {
			value.And(bm)
		}
	}

	if value == nil {
		return AcquireBitmap()
	}
	return value
}

// BMOr bitmap or, the inputs are not modified
func BMOr(bms ...*roaring.Bitmap) *roaring.Bitmap {
	if len(bms) == 0 {
		return AcquireBitmap()
	}

	return roaring.FastOr(bms...)
}

// BMAndnot bitmap andnot A - (B or C ...), the inputs are not modified
func BMAndnot(bms ...*roaring.Bitmap) *roaring.Bitmap {
	if len(bms) == 0 {
		return AcquireBitmap()
	}

	value := bms[0].Clone()
	for _, bm := range bms[1:] {
		value.AndNot(bm)
	}
	return value
}
