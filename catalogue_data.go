// Code generated from the reveng CRC catalogue (https://reveng.sourceforge.io/crc-catalogue/).
// DO NOT EDIT.

package gocrc

// canonicalParams is keyed by canonical template name, ASCII-sorted.
var canonicalParams = map[string]Params{
	"crc-10-atm": {Width: 10, Poly: 0x233, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-10-cdma2000": {Width: 10, Poly: 0x3d9, Init: 0x3ff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-10-gsm": {Width: 10, Poly: 0x175, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x3ff},
	"crc-11-flexray": {Width: 11, Poly: 0x385, Init: 0x1a, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-11-umts": {Width: 11, Poly: 0x307, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-12-cdma2000": {Width: 12, Poly: 0xf13, Init: 0xfff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-12-dect": {Width: 12, Poly: 0x80f, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-12-gsm": {Width: 12, Poly: 0xd31, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0xfff},
	"crc-12-umts": {Width: 12, Poly: 0x80f, Init: 0x0, RefIn: false, RefOut: true, XorOut: 0x0},
	"crc-13-bbc": {Width: 13, Poly: 0x1cf5, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-14-darc": {Width: 14, Poly: 0x805, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-14-gsm": {Width: 14, Poly: 0x202d, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x3fff},
	"crc-15-can": {Width: 15, Poly: 0x4599, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-15-mpt1327": {Width: 15, Poly: 0x6815, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x1},
	"crc-16-arc": {Width: 16, Poly: 0x8005, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-16-cdma2000": {Width: 16, Poly: 0xc867, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-cms": {Width: 16, Poly: 0x8005, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-dds-110": {Width: 16, Poly: 0x8005, Init: 0x800d, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-dect-r": {Width: 16, Poly: 0x589, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x1},
	"crc-16-dect-x": {Width: 16, Poly: 0x589, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-dnp": {Width: 16, Poly: 0x3d65, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0xffff},
	"crc-16-en-13757": {Width: 16, Poly: 0x3d65, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0xffff},
	"crc-16-genibus": {Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0xffff},
	"crc-16-gsm": {Width: 16, Poly: 0x1021, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0xffff},
	"crc-16-ibm-3740": {Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-ibm-sdlc": {Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0xffff},
	"crc-16-iso-iec-14443-3-a": {Width: 16, Poly: 0x1021, Init: 0xc6c6, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-16-kermit": {Width: 16, Poly: 0x1021, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-16-lj1200": {Width: 16, Poly: 0x6f63, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-m17": {Width: 16, Poly: 0x5935, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-maxim-dow": {Width: 16, Poly: 0x8005, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0xffff},
	"crc-16-mcrf4xx": {Width: 16, Poly: 0x1021, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-16-modbus": {Width: 16, Poly: 0x8005, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-16-nrsc-5": {Width: 16, Poly: 0x80b, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-16-opensafety-a": {Width: 16, Poly: 0x5935, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-opensafety-b": {Width: 16, Poly: 0x755b, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-profibus": {Width: 16, Poly: 0x1dcf, Init: 0xffff, RefIn: false, RefOut: false, XorOut: 0xffff},
	"crc-16-riello": {Width: 16, Poly: 0x1021, Init: 0xb2aa, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-16-spi-fujitsu": {Width: 16, Poly: 0x1021, Init: 0x1d0f, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-t10-dif": {Width: 16, Poly: 0x8bb7, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-teledisk": {Width: 16, Poly: 0xa097, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-tms37157": {Width: 16, Poly: 0x1021, Init: 0x89ec, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-16-umts": {Width: 16, Poly: 0x8005, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-16-usb": {Width: 16, Poly: 0x8005, Init: 0xffff, RefIn: true, RefOut: true, XorOut: 0xffff},
	"crc-16-xmodem": {Width: 16, Poly: 0x1021, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-17-can-fd": {Width: 17, Poly: 0x1685b, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-21-can-fd": {Width: 21, Poly: 0x102899, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-24-ble": {Width: 24, Poly: 0x65b, Init: 0x555555, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-24-flexray-a": {Width: 24, Poly: 0x5d6dcb, Init: 0xfedcba, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-24-flexray-b": {Width: 24, Poly: 0x5d6dcb, Init: 0xabcdef, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-24-interlaken": {Width: 24, Poly: 0x328b63, Init: 0xffffff, RefIn: false, RefOut: false, XorOut: 0xffffff},
	"crc-24-lte-a": {Width: 24, Poly: 0x864cfb, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-24-lte-b": {Width: 24, Poly: 0x800063, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-24-openpgp": {Width: 24, Poly: 0x864cfb, Init: 0xb704ce, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-24-os-9": {Width: 24, Poly: 0x800063, Init: 0xffffff, RefIn: false, RefOut: false, XorOut: 0xffffff},
	"crc-3-gsm": {Width: 3, Poly: 0x3, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x7},
	"crc-3-rohc": {Width: 3, Poly: 0x3, Init: 0x7, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-30-cdma": {Width: 30, Poly: 0x2030b9c7, Init: 0x3fffffff, RefIn: false, RefOut: false, XorOut: 0x3fffffff},
	"crc-31-philips": {Width: 31, Poly: 0x4c11db7, Init: 0x7fffffff, RefIn: false, RefOut: false, XorOut: 0x7fffffff},
	"crc-32-aixm": {Width: 32, Poly: 0x814141ab, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-32-autosar": {Width: 32, Poly: 0xf4acfb13, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff},
	"crc-32-base91-d": {Width: 32, Poly: 0xa833982b, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff},
	"crc-32-bzip2": {Width: 32, Poly: 0x4c11db7, Init: 0xffffffff, RefIn: false, RefOut: false, XorOut: 0xffffffff},
	"crc-32-cd-rom-edc": {Width: 32, Poly: 0x8001801b, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-32-cksum": {Width: 32, Poly: 0x4c11db7, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0xffffffff},
	"crc-32-iscsi": {Width: 32, Poly: 0x1edc6f41, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff},
	"crc-32-iso-hdlc": {Width: 32, Poly: 0x4c11db7, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff},
	"crc-32-jamcrc": {Width: 32, Poly: 0x4c11db7, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-32-mef": {Width: 32, Poly: 0x741b8cd7, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-32-mpeg-2": {Width: 32, Poly: 0x4c11db7, Init: 0xffffffff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-32-xfer": {Width: 32, Poly: 0xaf, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-4-g-704": {Width: 4, Poly: 0x3, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-4-interlaken": {Width: 4, Poly: 0x3, Init: 0xf, RefIn: false, RefOut: false, XorOut: 0xf},
	"crc-40-gsm": {Width: 40, Poly: 0x4820009, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0xffffffffff},
	"crc-5-epc-c1g2": {Width: 5, Poly: 0x9, Init: 0x9, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-5-g-704": {Width: 5, Poly: 0x15, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-5-usb": {Width: 5, Poly: 0x5, Init: 0x1f, RefIn: true, RefOut: true, XorOut: 0x1f},
	"crc-6-cdma2000-a": {Width: 6, Poly: 0x27, Init: 0x3f, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-6-cdma2000-b": {Width: 6, Poly: 0x7, Init: 0x3f, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-6-darc": {Width: 6, Poly: 0x19, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-6-g-704": {Width: 6, Poly: 0x3, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-6-gsm": {Width: 6, Poly: 0x2f, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x3f},
	"crc-64-ecma-182": {Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-64-go-iso": {Width: 64, Poly: 0x1b, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffffffffffff},
	"crc-64-ms": {Width: 64, Poly: 0x259c84cba6426349, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-64-nvme": {Width: 64, Poly: 0xad93d23594c93659, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffffffffffff},
	"crc-64-redis": {Width: 64, Poly: 0xad93d23594c935a9, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-64-we": {Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0xffffffffffffffff, RefIn: false, RefOut: false, XorOut: 0xffffffffffffffff},
	"crc-64-xz": {Width: 64, Poly: 0x42f0e1eba9ea3693, Init: 0xffffffffffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffffffffffff},
	"crc-7-mmc": {Width: 7, Poly: 0x9, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-7-rohc": {Width: 7, Poly: 0x4f, Init: 0x7f, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-7-umts": {Width: 7, Poly: 0x45, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-autosar": {Width: 8, Poly: 0x2f, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0xff},
	"crc-8-bluetooth": {Width: 8, Poly: 0xa7, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-8-cdma2000": {Width: 8, Poly: 0x9b, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-darc": {Width: 8, Poly: 0x39, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-8-dvb-s2": {Width: 8, Poly: 0xd5, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-gsm-a": {Width: 8, Poly: 0x1d, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-gsm-b": {Width: 8, Poly: 0x49, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0xff},
	"crc-8-hitag": {Width: 8, Poly: 0x1d, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-i-432-1": {Width: 8, Poly: 0x7, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x55},
	"crc-8-i-code": {Width: 8, Poly: 0x1d, Init: 0xfd, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-lte": {Width: 8, Poly: 0x9b, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-maxim-dow": {Width: 8, Poly: 0x31, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-8-mifare-mad": {Width: 8, Poly: 0x1d, Init: 0xc7, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-nrsc-5": {Width: 8, Poly: 0x31, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-opensafety": {Width: 8, Poly: 0x2f, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-rohc": {Width: 8, Poly: 0x7, Init: 0xff, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-8-sae-j1850": {Width: 8, Poly: 0x1d, Init: 0xff, RefIn: false, RefOut: false, XorOut: 0xff},
	"crc-8-smbus": {Width: 8, Poly: 0x7, Init: 0x0, RefIn: false, RefOut: false, XorOut: 0x0},
	"crc-8-tech-3250": {Width: 8, Poly: 0x1d, Init: 0xff, RefIn: true, RefOut: true, XorOut: 0x0},
	"crc-8-wcdma": {Width: 8, Poly: 0x9b, Init: 0x0, RefIn: true, RefOut: true, XorOut: 0x0},
}

// catalogueCheck maps canonical template name to its reference check value
// (the CRC of ASCII "123456789"), from the reveng catalogue.
var catalogueCheck = map[string]uint64{
	"crc-10-atm": 0x199,
	"crc-10-cdma2000": 0x233,
	"crc-10-gsm": 0x12a,
	"crc-11-flexray": 0x5a3,
	"crc-11-umts": 0x61,
	"crc-12-cdma2000": 0xd4d,
	"crc-12-dect": 0xf5b,
	"crc-12-gsm": 0xb34,
	"crc-12-umts": 0xdaf,
	"crc-13-bbc": 0x4fa,
	"crc-14-darc": 0x82d,
	"crc-14-gsm": 0x30ae,
	"crc-15-can": 0x59e,
	"crc-15-mpt1327": 0x2566,
	"crc-16-arc": 0xbb3d,
	"crc-16-cdma2000": 0x4c06,
	"crc-16-cms": 0xaee7,
	"crc-16-dds-110": 0x9ecf,
	"crc-16-dect-r": 0x7e,
	"crc-16-dect-x": 0x7f,
	"crc-16-dnp": 0xea82,
	"crc-16-en-13757": 0xc2b7,
	"crc-16-genibus": 0xd64e,
	"crc-16-gsm": 0xce3c,
	"crc-16-ibm-3740": 0x29b1,
	"crc-16-ibm-sdlc": 0x906e,
	"crc-16-iso-iec-14443-3-a": 0xbf05,
	"crc-16-kermit": 0x2189,
	"crc-16-lj1200": 0xbdf4,
	"crc-16-m17": 0x772b,
	"crc-16-maxim-dow": 0x44c2,
	"crc-16-mcrf4xx": 0x6f91,
	"crc-16-modbus": 0x4b37,
	"crc-16-nrsc-5": 0xa066,
	"crc-16-opensafety-a": 0x5d38,
	"crc-16-opensafety-b": 0x20fe,
	"crc-16-profibus": 0xa819,
	"crc-16-riello": 0x63d0,
	"crc-16-spi-fujitsu": 0xe5cc,
	"crc-16-t10-dif": 0xd0db,
	"crc-16-teledisk": 0xfb3,
	"crc-16-tms37157": 0x26b1,
	"crc-16-umts": 0xfee8,
	"crc-16-usb": 0xb4c8,
	"crc-16-xmodem": 0x31c3,
	"crc-17-can-fd": 0x4f03,
	"crc-21-can-fd": 0xed841,
	"crc-24-ble": 0xc25a56,
	"crc-24-flexray-a": 0x7979bd,
	"crc-24-flexray-b": 0x1f23b8,
	"crc-24-interlaken": 0xb4f3e6,
	"crc-24-lte-a": 0xcde703,
	"crc-24-lte-b": 0x23ef52,
	"crc-24-openpgp": 0x21cf02,
	"crc-24-os-9": 0x200fa5,
	"crc-3-gsm": 0x4,
	"crc-3-rohc": 0x6,
	"crc-30-cdma": 0x4c34abf,
	"crc-31-philips": 0xce9e46c,
	"crc-32-aixm": 0x3010bf7f,
	"crc-32-autosar": 0x1697d06a,
	"crc-32-base91-d": 0x87315576,
	"crc-32-bzip2": 0xfc891918,
	"crc-32-cd-rom-edc": 0x6ec2edc4,
	"crc-32-cksum": 0x765e7680,
	"crc-32-iscsi": 0xe3069283,
	"crc-32-iso-hdlc": 0xcbf43926,
	"crc-32-jamcrc": 0x340bc6d9,
	"crc-32-mef": 0xd2c22f51,
	"crc-32-mpeg-2": 0x376e6e7,
	"crc-32-xfer": 0xbd0be338,
	"crc-4-g-704": 0x7,
	"crc-4-interlaken": 0xb,
	"crc-40-gsm": 0xd4164fc646,
	"crc-5-epc-c1g2": 0x0,
	"crc-5-g-704": 0x7,
	"crc-5-usb": 0x19,
	"crc-6-cdma2000-a": 0xd,
	"crc-6-cdma2000-b": 0x3b,
	"crc-6-darc": 0x26,
	"crc-6-g-704": 0x6,
	"crc-6-gsm": 0x13,
	"crc-64-ecma-182": 0x6c40df5f0b497347,
	"crc-64-go-iso": 0xb90956c775a41001,
	"crc-64-ms": 0x75d4b74f024eceea,
	"crc-64-nvme": 0xae8b14860a799888,
	"crc-64-redis": 0xe9c6d914c4b8d9ca,
	"crc-64-we": 0x62ec59e3f1a4f00a,
	"crc-64-xz": 0x995dc9bbdf1939fa,
	"crc-7-mmc": 0x75,
	"crc-7-rohc": 0x53,
	"crc-7-umts": 0x61,
	"crc-8-autosar": 0xdf,
	"crc-8-bluetooth": 0x26,
	"crc-8-cdma2000": 0xda,
	"crc-8-darc": 0x15,
	"crc-8-dvb-s2": 0xbc,
	"crc-8-gsm-a": 0x37,
	"crc-8-gsm-b": 0x94,
	"crc-8-hitag": 0xb4,
	"crc-8-i-432-1": 0xa1,
	"crc-8-i-code": 0x7e,
	"crc-8-lte": 0xea,
	"crc-8-maxim-dow": 0xa1,
	"crc-8-mifare-mad": 0x99,
	"crc-8-nrsc-5": 0xf7,
	"crc-8-opensafety": 0x3e,
	"crc-8-rohc": 0xd0,
	"crc-8-sae-j1850": 0x4b,
	"crc-8-smbus": 0xf4,
	"crc-8-tech-3250": 0x97,
	"crc-8-wcdma": 0x25,
}

// catalogueNames is every alias name (including canonical names, which alias themselves),
// ASCII-sorted ascending so Lookup can binary search it, mapped to its canonical template name.
var catalogueNames = []nameEntry{
	{"arc", "crc-16-arc"},
	{"b-crc-32", "crc-32-bzip2"},
	{"cksum", "crc-32-cksum"},
	{"crc-10", "crc-10-atm"},
	{"crc-10-atm", "crc-10-atm"},
	{"crc-10-cdma2000", "crc-10-cdma2000"},
	{"crc-10-gsm", "crc-10-gsm"},
	{"crc-10-i-610", "crc-10-atm"},
	{"crc-11", "crc-11-flexray"},
	{"crc-11-flexray", "crc-11-flexray"},
	{"crc-11-umts", "crc-11-umts"},
	{"crc-12-3gpp", "crc-12-umts"},
	{"crc-12-cdma2000", "crc-12-cdma2000"},
	{"crc-12-dect", "crc-12-dect"},
	{"crc-12-gsm", "crc-12-gsm"},
	{"crc-12-umts", "crc-12-umts"},
	{"crc-13-bbc", "crc-13-bbc"},
	{"crc-14-darc", "crc-14-darc"},
	{"crc-14-gsm", "crc-14-gsm"},
	{"crc-15", "crc-15-can"},
	{"crc-15-can", "crc-15-can"},
	{"crc-15-mpt1327", "crc-15-mpt1327"},
	{"crc-16", "crc-16-arc"},
	{"crc-16-acorn", "crc-16-xmodem"},
	{"crc-16-arc", "crc-16-arc"},
	{"crc-16-aug-ccitt", "crc-16-spi-fujitsu"},
	{"crc-16-autosar", "crc-16-ibm-3740"},
	{"crc-16-bluetooth", "crc-16-kermit"},
	{"crc-16-buypass", "crc-16-umts"},
	{"crc-16-ccitt", "crc-16-kermit"},
	{"crc-16-ccitt-false", "crc-16-ibm-3740"},
	{"crc-16-ccitt-true", "crc-16-kermit"},
	{"crc-16-cdma2000", "crc-16-cdma2000"},
	{"crc-16-cms", "crc-16-cms"},
	{"crc-16-darc", "crc-16-genibus"},
	{"crc-16-dds-110", "crc-16-dds-110"},
	{"crc-16-dect-r", "crc-16-dect-r"},
	{"crc-16-dect-x", "crc-16-dect-x"},
	{"crc-16-dnp", "crc-16-dnp"},
	{"crc-16-en-13757", "crc-16-en-13757"},
	{"crc-16-epc", "crc-16-genibus"},
	{"crc-16-epc-c1g2", "crc-16-genibus"},
	{"crc-16-genibus", "crc-16-genibus"},
	{"crc-16-gsm", "crc-16-gsm"},
	{"crc-16-i-code", "crc-16-genibus"},
	{"crc-16-ibm-3740", "crc-16-ibm-3740"},
	{"crc-16-ibm-sdlc", "crc-16-ibm-sdlc"},
	{"crc-16-iec-61158-2", "crc-16-profibus"},
	{"crc-16-iso-hdlc", "crc-16-ibm-sdlc"},
	{"crc-16-iso-iec-14443-3-a", "crc-16-iso-iec-14443-3-a"},
	{"crc-16-iso-iec-14443-3-b", "crc-16-ibm-sdlc"},
	{"crc-16-kermit", "crc-16-kermit"},
	{"crc-16-lha", "crc-16-arc"},
	{"crc-16-lj1200", "crc-16-lj1200"},
	{"crc-16-lte", "crc-16-xmodem"},
	{"crc-16-m17", "crc-16-m17"},
	{"crc-16-maxim", "crc-16-maxim-dow"},
	{"crc-16-maxim-dow", "crc-16-maxim-dow"},
	{"crc-16-mcrf4xx", "crc-16-mcrf4xx"},
	{"crc-16-modbus", "crc-16-modbus"},
	{"crc-16-nrsc-5", "crc-16-nrsc-5"},
	{"crc-16-opensafety-a", "crc-16-opensafety-a"},
	{"crc-16-opensafety-b", "crc-16-opensafety-b"},
	{"crc-16-profibus", "crc-16-profibus"},
	{"crc-16-riello", "crc-16-riello"},
	{"crc-16-spi-fujitsu", "crc-16-spi-fujitsu"},
	{"crc-16-t10-dif", "crc-16-t10-dif"},
	{"crc-16-teledisk", "crc-16-teledisk"},
	{"crc-16-tms37157", "crc-16-tms37157"},
	{"crc-16-umts", "crc-16-umts"},
	{"crc-16-usb", "crc-16-usb"},
	{"crc-16-v-41-lsb", "crc-16-kermit"},
	{"crc-16-v-41-msb", "crc-16-xmodem"},
	{"crc-16-verifone", "crc-16-umts"},
	{"crc-16-x-25", "crc-16-ibm-sdlc"},
	{"crc-16-xmodem", "crc-16-xmodem"},
	{"crc-17-can-fd", "crc-17-can-fd"},
	{"crc-21-can-fd", "crc-21-can-fd"},
	{"crc-24", "crc-24-openpgp"},
	{"crc-24-ble", "crc-24-ble"},
	{"crc-24-flexray-a", "crc-24-flexray-a"},
	{"crc-24-flexray-b", "crc-24-flexray-b"},
	{"crc-24-interlaken", "crc-24-interlaken"},
	{"crc-24-lte-a", "crc-24-lte-a"},
	{"crc-24-lte-b", "crc-24-lte-b"},
	{"crc-24-openpgp", "crc-24-openpgp"},
	{"crc-24-os-9", "crc-24-os-9"},
	{"crc-3-gsm", "crc-3-gsm"},
	{"crc-3-rohc", "crc-3-rohc"},
	{"crc-30-cdma", "crc-30-cdma"},
	{"crc-31-philips", "crc-31-philips"},
	{"crc-32", "crc-32-iso-hdlc"},
	{"crc-32-aal5", "crc-32-bzip2"},
	{"crc-32-adccp", "crc-32-iso-hdlc"},
	{"crc-32-aixm", "crc-32-aixm"},
	{"crc-32-autosar", "crc-32-autosar"},
	{"crc-32-base91-c", "crc-32-iscsi"},
	{"crc-32-base91-d", "crc-32-base91-d"},
	{"crc-32-bzip2", "crc-32-bzip2"},
	{"crc-32-castagnoli", "crc-32-iscsi"},
	{"crc-32-cd-rom-edc", "crc-32-cd-rom-edc"},
	{"crc-32-cksum", "crc-32-cksum"},
	{"crc-32-dect-b", "crc-32-bzip2"},
	{"crc-32-interlaken", "crc-32-iscsi"},
	{"crc-32-iscsi", "crc-32-iscsi"},
	{"crc-32-iso-hdlc", "crc-32-iso-hdlc"},
	{"crc-32-jamcrc", "crc-32-jamcrc"},
	{"crc-32-mef", "crc-32-mef"},
	{"crc-32-mpeg-2", "crc-32-mpeg-2"},
	{"crc-32-nvme", "crc-32-iscsi"},
	{"crc-32-posix", "crc-32-cksum"},
	{"crc-32-v-42", "crc-32-iso-hdlc"},
	{"crc-32-xfer", "crc-32-xfer"},
	{"crc-32-xz", "crc-32-iso-hdlc"},
	{"crc-32c", "crc-32-iscsi"},
	{"crc-32d", "crc-32-base91-d"},
	{"crc-32q", "crc-32-aixm"},
	{"crc-4-g-704", "crc-4-g-704"},
	{"crc-4-interlaken", "crc-4-interlaken"},
	{"crc-4-itu", "crc-4-g-704"},
	{"crc-40-gsm", "crc-40-gsm"},
	{"crc-5-epc", "crc-5-epc-c1g2"},
	{"crc-5-epc-c1g2", "crc-5-epc-c1g2"},
	{"crc-5-g-704", "crc-5-g-704"},
	{"crc-5-itu", "crc-5-g-704"},
	{"crc-5-usb", "crc-5-usb"},
	{"crc-6-cdma2000-a", "crc-6-cdma2000-a"},
	{"crc-6-cdma2000-b", "crc-6-cdma2000-b"},
	{"crc-6-darc", "crc-6-darc"},
	{"crc-6-g-704", "crc-6-g-704"},
	{"crc-6-gsm", "crc-6-gsm"},
	{"crc-6-itu", "crc-6-g-704"},
	{"crc-64", "crc-64-ecma-182"},
	{"crc-64-ecma-182", "crc-64-ecma-182"},
	{"crc-64-go-ecma", "crc-64-xz"},
	{"crc-64-go-iso", "crc-64-go-iso"},
	{"crc-64-ms", "crc-64-ms"},
	{"crc-64-nvme", "crc-64-nvme"},
	{"crc-64-redis", "crc-64-redis"},
	{"crc-64-we", "crc-64-we"},
	{"crc-64-xz", "crc-64-xz"},
	{"crc-7", "crc-7-mmc"},
	{"crc-7-mmc", "crc-7-mmc"},
	{"crc-7-rohc", "crc-7-rohc"},
	{"crc-7-umts", "crc-7-umts"},
	{"crc-8", "crc-8-smbus"},
	{"crc-8-aes", "crc-8-tech-3250"},
	{"crc-8-autosar", "crc-8-autosar"},
	{"crc-8-bluetooth", "crc-8-bluetooth"},
	{"crc-8-cdma2000", "crc-8-cdma2000"},
	{"crc-8-darc", "crc-8-darc"},
	{"crc-8-dvb-s2", "crc-8-dvb-s2"},
	{"crc-8-ebu", "crc-8-tech-3250"},
	{"crc-8-gsm-a", "crc-8-gsm-a"},
	{"crc-8-gsm-b", "crc-8-gsm-b"},
	{"crc-8-hitag", "crc-8-hitag"},
	{"crc-8-i-432-1", "crc-8-i-432-1"},
	{"crc-8-i-code", "crc-8-i-code"},
	{"crc-8-itu", "crc-8-i-432-1"},
	{"crc-8-lte", "crc-8-lte"},
	{"crc-8-maxim", "crc-8-maxim-dow"},
	{"crc-8-maxim-dow", "crc-8-maxim-dow"},
	{"crc-8-mifare-mad", "crc-8-mifare-mad"},
	{"crc-8-nrsc-5", "crc-8-nrsc-5"},
	{"crc-8-opensafety", "crc-8-opensafety"},
	{"crc-8-rohc", "crc-8-rohc"},
	{"crc-8-sae-j1850", "crc-8-sae-j1850"},
	{"crc-8-smbus", "crc-8-smbus"},
	{"crc-8-tech-3250", "crc-8-tech-3250"},
	{"crc-8-wcdma", "crc-8-wcdma"},
	{"crc-a", "crc-16-iso-iec-14443-3-a"},
	{"crc-b", "crc-16-ibm-sdlc"},
	{"crc-ccitt", "crc-16-kermit"},
	{"crc-ibm", "crc-16-arc"},
	{"dow-crc", "crc-8-maxim-dow"},
	{"jamcrc", "crc-32-jamcrc"},
	{"kermit", "crc-16-kermit"},
	{"modbus", "crc-16-modbus"},
	{"pkzip", "crc-32-iso-hdlc"},
	{"r-crc-16", "crc-16-dect-r"},
	{"x-25", "crc-16-ibm-sdlc"},
	{"x-crc-12", "crc-12-dect"},
	{"x-crc-16", "crc-16-dect-x"},
	{"xfer", "crc-32-xfer"},
	{"xmodem", "crc-16-xmodem"},
	{"zmodem", "crc-16-xmodem"},
}

