// Package section defines the fixed-size binary header structures shared by
// the LVL and FCM decoders.
//
// # Overview
//
// Two container formats in this module carry a fixed-layout header ahead of
// their variable-length body, and both follow the same idiom: a struct with
// byte-offset-commented fields, a Parse([]byte) error method that validates
// the magic/version and populates the struct, and a Bytes() []byte method
// that serializes it back. CW and DAT have no fixed header in this sense —
// their framing is NBT and Java-serialization grammar respectively, handled
// by the nbt and decode packages instead.
//
// LvlHeader (18 bytes, little-endian):
//
//	Bytes  | Field        | Type   | Description
//	-------|--------------|--------|----------------------------------
//	0-1    | Magic        | uint16 | must equal 1874
//	2-3    | Width        | uint16 |
//	4-5    | Length       | uint16 |
//	6-7    | Height       | uint16 |
//	8-9    | SpawnX       | uint16 |
//	10-11  | SpawnZ       | uint16 |
//	12-13  | SpawnY       | uint16 |
//	14     | Yaw          | uint8  |
//	15     | Pitch        | uint8  |
//	16-17  | Permissions  | uint16 | ignored
//
// FcmHeader (79 bytes, little-endian):
//
//	Bytes  | Field         | Type     | Description
//	-------|---------------|----------|----------------------------------
//	0-3    | Magic         | uint32   | must equal 0x0FC2AF40
//	4      | Revision      | uint8    | must equal 13
//	5-6    | Width         | uint16   |
//	7-8    | Height        | uint16   |
//	9-10   | Length        | uint16   |
//	11-14  | SpawnX        | int32    | 1/32-block fixed point
//	15-18  | SpawnY        | int32    | 1/32-block fixed point
//	19-22  | SpawnZ        | int32    | 1/32-block fixed point
//	23     | Yaw           | uint8    |
//	24     | Pitch         | uint8    |
//	25-32  | date fields   | [8]byte  | ignored
//	33-48  | UUID          | [16]byte |
//	49-74  | layer index   | [26]byte | ignored
//	75-78  | MetaCount     | uint32   |
//
// Both headers are read directly off the decompressed (LVL) or raw (FCM,
// which is uncompressed ahead of its GZIP-compressed tail) byte stream with
// a single Parse call; callers do not need to know the field offsets.
package section
