// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: vision.proto

package pb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// ErrorCode is shared across the Go platform and the Python sidecar.
type ErrorCode int32

const (
	ErrorCode_ERROR_CODE_UNSPECIFIED    ErrorCode = 0
	ErrorCode_UNKNOWN                   ErrorCode = 1
	ErrorCode_INTERNAL                  ErrorCode = 2
	ErrorCode_INVALID_ARGUMENT          ErrorCode = 3
	ErrorCode_UNAVAILABLE               ErrorCode = 4
	ErrorCode_TIMEOUT                   ErrorCode = 5
	ErrorCode_CANCELLED                 ErrorCode = 6
	ErrorCode_VISION_INVALID_IMAGE      ErrorCode = 10
	ErrorCode_VISION_DETECT_FAILED      ErrorCode = 11
	ErrorCode_VISION_MODEL_LOAD_FAILED  ErrorCode = 12
	ErrorCode_SPEECH_SYNTHESIS_FAILED   ErrorCode = 20
	ErrorCode_SPEECH_ENGINE_UNAVAILABLE ErrorCode = 21
	ErrorCode_CAMERA_OPEN_FAILED        ErrorCode = 30
	ErrorCode_CAMERA_READ_FAILED        ErrorCode = 31
	ErrorCode_AUDIO_DEVICE_FAILED       ErrorCode = 40
	ErrorCode_LOG_WRITE_FAILED          ErrorCode = 50
	ErrorCode_CONFIG_INVALID            ErrorCode = 60
	ErrorCode_CONFIG_MISSING            ErrorCode = 61
)

// Enum value maps for ErrorCode.
var (
	ErrorCode_name = map[int32]string{
		0:  "ERROR_CODE_UNSPECIFIED",
		1:  "UNKNOWN",
		2:  "INTERNAL",
		3:  "INVALID_ARGUMENT",
		4:  "UNAVAILABLE",
		5:  "TIMEOUT",
		6:  "CANCELLED",
		10: "VISION_INVALID_IMAGE",
		11: "VISION_DETECT_FAILED",
		12: "VISION_MODEL_LOAD_FAILED",
		20: "SPEECH_SYNTHESIS_FAILED",
		21: "SPEECH_ENGINE_UNAVAILABLE",
		30: "CAMERA_OPEN_FAILED",
		31: "CAMERA_READ_FAILED",
		40: "AUDIO_DEVICE_FAILED",
		50: "LOG_WRITE_FAILED",
		60: "CONFIG_INVALID",
		61: "CONFIG_MISSING",
	}
	ErrorCode_value = map[string]int32{
		"ERROR_CODE_UNSPECIFIED":    0,
		"UNKNOWN":                   1,
		"INTERNAL":                  2,
		"INVALID_ARGUMENT":          3,
		"UNAVAILABLE":               4,
		"TIMEOUT":                   5,
		"CANCELLED":                 6,
		"VISION_INVALID_IMAGE":      10,
		"VISION_DETECT_FAILED":      11,
		"VISION_MODEL_LOAD_FAILED":  12,
		"SPEECH_SYNTHESIS_FAILED":   20,
		"SPEECH_ENGINE_UNAVAILABLE": 21,
		"CAMERA_OPEN_FAILED":        30,
		"CAMERA_READ_FAILED":        31,
		"AUDIO_DEVICE_FAILED":       40,
		"LOG_WRITE_FAILED":          50,
		"CONFIG_INVALID":            60,
		"CONFIG_MISSING":            61,
	}
)

func (x ErrorCode) Enum() *ErrorCode {
	p := new(ErrorCode)
	*p = x
	return p
}

func (x ErrorCode) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ErrorCode) Descriptor() protoreflect.EnumDescriptor {
	return file_vision_proto_enumTypes[0].Descriptor()
}

func (ErrorCode) Type() protoreflect.EnumType {
	return &file_vision_proto_enumTypes[0]
}

func (x ErrorCode) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ErrorCode.Descriptor instead.
func (ErrorCode) EnumDescriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{0}
}

type DetectRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageData     []byte                 `protobuf:"bytes,1,opt,name=image_data,json=imageData,proto3" json:"image_data,omitempty"` // encoded frame
	Format        string                 `protobuf:"bytes,2,opt,name=format,proto3" json:"format,omitempty"`                        // "jpeg" or "png"
	MaxFaces      int32                  `protobuf:"varint,3,opt,name=max_faces,json=maxFaces,proto3" json:"max_faces,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectRequest) Reset() {
	*x = DetectRequest{}
	mi := &file_vision_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectRequest) ProtoMessage() {}

func (x *DetectRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectRequest.ProtoReflect.Descriptor instead.
func (*DetectRequest) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{0}
}

func (x *DetectRequest) GetImageData() []byte {
	if x != nil {
		return x.ImageData
	}
	return nil
}

func (x *DetectRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *DetectRequest) GetMaxFaces() int32 {
	if x != nil {
		return x.MaxFaces
	}
	return 0
}

// Landmark is a single face-mesh point in normalized [0,1] coordinates.
type Landmark struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X             float32                `protobuf:"fixed32,1,opt,name=x,proto3" json:"x,omitempty"`
	Y             float32                `protobuf:"fixed32,2,opt,name=y,proto3" json:"y,omitempty"`
	Z             float32                `protobuf:"fixed32,3,opt,name=z,proto3" json:"z,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Landmark) Reset() {
	*x = Landmark{}
	mi := &file_vision_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Landmark) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Landmark) ProtoMessage() {}

func (x *Landmark) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Landmark.ProtoReflect.Descriptor instead.
func (*Landmark) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{1}
}

func (x *Landmark) GetX() float32 {
	if x != nil {
		return x.X
	}
	return 0
}

func (x *Landmark) GetY() float32 {
	if x != nil {
		return x.Y
	}
	return 0
}

func (x *Landmark) GetZ() float32 {
	if x != nil {
		return x.Z
	}
	return 0
}

type FaceLandmarks struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Landmarks     []*Landmark            `protobuf:"bytes,1,rep,name=landmarks,proto3" json:"landmarks,omitempty"`
	Confidence    float32                `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FaceLandmarks) Reset() {
	*x = FaceLandmarks{}
	mi := &file_vision_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FaceLandmarks) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FaceLandmarks) ProtoMessage() {}

func (x *FaceLandmarks) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FaceLandmarks.ProtoReflect.Descriptor instead.
func (*FaceLandmarks) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{2}
}

func (x *FaceLandmarks) GetLandmarks() []*Landmark {
	if x != nil {
		return x.Landmarks
	}
	return nil
}

func (x *FaceLandmarks) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type DetectResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Faces         []*FaceLandmarks       `protobuf:"bytes,1,rep,name=faces,proto3" json:"faces,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DetectResponse) Reset() {
	*x = DetectResponse{}
	mi := &file_vision_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DetectResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DetectResponse) ProtoMessage() {}

func (x *DetectResponse) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DetectResponse.ProtoReflect.Descriptor instead.
func (*DetectResponse) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{3}
}

func (x *DetectResponse) GetFaces() []*FaceLandmarks {
	if x != nil {
		return x.Faces
	}
	return nil
}

type SynthesizeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	SampleRate    int32                  `protobuf:"varint,2,opt,name=sample_rate,json=sampleRate,proto3" json:"sample_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SynthesizeRequest) Reset() {
	*x = SynthesizeRequest{}
	mi := &file_vision_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SynthesizeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SynthesizeRequest) ProtoMessage() {}

func (x *SynthesizeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SynthesizeRequest.ProtoReflect.Descriptor instead.
func (*SynthesizeRequest) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{4}
}

func (x *SynthesizeRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *SynthesizeRequest) GetSampleRate() int32 {
	if x != nil {
		return x.SampleRate
	}
	return 0
}

type AudioChunk struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pcm           []byte                 `protobuf:"bytes,1,opt,name=pcm,proto3" json:"pcm,omitempty"` // little-endian mono PCM16
	SampleRate    int32                  `protobuf:"varint,2,opt,name=sample_rate,json=sampleRate,proto3" json:"sample_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AudioChunk) Reset() {
	*x = AudioChunk{}
	mi := &file_vision_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AudioChunk) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AudioChunk) ProtoMessage() {}

func (x *AudioChunk) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AudioChunk.ProtoReflect.Descriptor instead.
func (*AudioChunk) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{5}
}

func (x *AudioChunk) GetPcm() []byte {
	if x != nil {
		return x.Pcm
	}
	return nil
}

func (x *AudioChunk) GetSampleRate() int32 {
	if x != nil {
		return x.SampleRate
	}
	return 0
}

type ErrorDetail struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          ErrorCode              `protobuf:"varint,1,opt,name=code,proto3,enum=vision.ErrorCode" json:"code,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Metadata      map[string]string      `protobuf:"bytes,3,rep,name=metadata,proto3" json:"metadata,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ErrorDetail) Reset() {
	*x = ErrorDetail{}
	mi := &file_vision_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ErrorDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ErrorDetail) ProtoMessage() {}

func (x *ErrorDetail) ProtoReflect() protoreflect.Message {
	mi := &file_vision_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ErrorDetail.ProtoReflect.Descriptor instead.
func (*ErrorDetail) Descriptor() ([]byte, []int) {
	return file_vision_proto_rawDescGZIP(), []int{6}
}

func (x *ErrorDetail) GetCode() ErrorCode {
	if x != nil {
		return x.Code
	}
	return ErrorCode_ERROR_CODE_UNSPECIFIED
}

func (x *ErrorDetail) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ErrorDetail) GetMetadata() map[string]string {
	if x != nil {
		return x.Metadata
	}
	return nil
}

var File_vision_proto protoreflect.FileDescriptor

const file_vision_proto_rawDesc = "" +
	"\n" +
	"\fvision.proto\x12\x06vision\"c\n" +
	"\rDetectRequest\x12\x1d\n" +
	"\n" +
	"image_data\x18\x01 \x01(\fR\timageData\x12\x16\n" +
	"\x06format\x18\x02 \x01(\tR\x06format\x12\x1b\n" +
	"\tmax_faces\x18\x03 \x01(\x05R\bmaxFaces\"4\n" +
	"\bLandmark\x12\f\n" +
	"\x01x\x18\x01 \x01(\x02R\x01x\x12\f\n" +
	"\x01y\x18\x02 \x01(\x02R\x01y\x12\f\n" +
	"\x01z\x18\x03 \x01(\x02R\x01z\"_\n" +
	"\rFaceLandmarks\x12.\n" +
	"\tlandmarks\x18\x01 \x03(\v2\x10.vision.LandmarkR\tlandmarks\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x02R\n" +
	"confidence\"=\n" +
	"\x0eDetectResponse\x12+\n" +
	"\x05faces\x18\x01 \x03(\v2\x15.vision.FaceLandmarksR\x05faces\"H\n" +
	"\x11SynthesizeRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x1f\n" +
	"\vsample_rate\x18\x02 \x01(\x05R\n" +
	"sampleRate\"?\n" +
	"\n" +
	"AudioChunk\x12\x10\n" +
	"\x03pcm\x18\x01 \x01(\fR\x03pcm\x12\x1f\n" +
	"\vsample_rate\x18\x02 \x01(\x05R\n" +
	"sampleRate\"\xca\x01\n" +
	"\vErrorDetail\x12%\n" +
	"\x04code\x18\x01 \x01(\x0e2\x11.vision.ErrorCodeR\x04code\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12=\n" +
	"\bmetadata\x18\x03 \x03(\v2!.vision.ErrorDetail.MetadataEntryR\bmetadata\x1a;\n" +
	"\rMetadataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01*\x9a\x03\n" +
	"\tErrorCode\x12\x1a\n" +
	"\x16ERROR_CODE_UNSPECIFIED\x10\x00\x12\v\n" +
	"\aUNKNOWN\x10\x01\x12\f\n" +
	"\bINTERNAL\x10\x02\x12\x14\n" +
	"\x10INVALID_ARGUMENT\x10\x03\x12\x0f\n" +
	"\vUNAVAILABLE\x10\x04\x12\v\n" +
	"\aTIMEOUT\x10\x05\x12\r\n" +
	"\tCANCELLED\x10\x06\x12\x18\n" +
	"\x14VISION_INVALID_IMAGE\x10\n" +
	"\x12\x18\n" +
	"\x14VISION_DETECT_FAILED\x10\v\x12\x1c\n" +
	"\x18VISION_MODEL_LOAD_FAILED\x10\f\x12\x1b\n" +
	"\x17SPEECH_SYNTHESIS_FAILED\x10\x14\x12\x1d\n" +
	"\x19SPEECH_ENGINE_UNAVAILABLE\x10\x15\x12\x16\n" +
	"\x12CAMERA_OPEN_FAILED\x10\x1e\x12\x16\n" +
	"\x12CAMERA_READ_FAILED\x10\x1f\x12\x17\n" +
	"\x13AUDIO_DEVICE_FAILED\x10(\x12\x14\n" +
	"\x10LOG_WRITE_FAILED\x102\x12\x12\n" +
	"\x0eCONFIG_INVALID\x10<\x12\x12\n" +
	"\x0eCONFIG_MISSING\x10=2Q\n" +
	"\rVisionService\x12@\n" +
	"\x0fDetectLandmarks\x12\x15.vision.DetectRequest\x1a\x16.vision.DetectResponse2N\n" +
	"\rSpeechService\x12=\n" +
	"\n" +
	"Synthesize\x12\x19.vision.SynthesizeRequest\x1a\x12.vision.AudioChunk0\x01B'Z%github.com/studywatch/platform/pkg/pbb\x06proto3"

var (
	file_vision_proto_rawDescOnce sync.Once
	file_vision_proto_rawDescData []byte
)

func file_vision_proto_rawDescGZIP() []byte {
	file_vision_proto_rawDescOnce.Do(func() {
		file_vision_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_vision_proto_rawDesc), len(file_vision_proto_rawDesc)))
	})
	return file_vision_proto_rawDescData
}

var file_vision_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_vision_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_vision_proto_goTypes = []any{
	(ErrorCode)(0),            // 0: vision.ErrorCode
	(*DetectRequest)(nil),     // 1: vision.DetectRequest
	(*Landmark)(nil),          // 2: vision.Landmark
	(*FaceLandmarks)(nil),     // 3: vision.FaceLandmarks
	(*DetectResponse)(nil),    // 4: vision.DetectResponse
	(*SynthesizeRequest)(nil), // 5: vision.SynthesizeRequest
	(*AudioChunk)(nil),        // 6: vision.AudioChunk
	(*ErrorDetail)(nil),       // 7: vision.ErrorDetail
	nil,                       // 8: vision.ErrorDetail.MetadataEntry
}
var file_vision_proto_depIdxs = []int32{
	2, // 0: vision.FaceLandmarks.landmarks:type_name -> vision.Landmark
	3, // 1: vision.DetectResponse.faces:type_name -> vision.FaceLandmarks
	0, // 2: vision.ErrorDetail.code:type_name -> vision.ErrorCode
	8, // 3: vision.ErrorDetail.metadata:type_name -> vision.ErrorDetail.MetadataEntry
	1, // 4: vision.VisionService.DetectLandmarks:input_type -> vision.DetectRequest
	5, // 5: vision.SpeechService.Synthesize:input_type -> vision.SynthesizeRequest
	4, // 6: vision.VisionService.DetectLandmarks:output_type -> vision.DetectResponse
	6, // 7: vision.SpeechService.Synthesize:output_type -> vision.AudioChunk
	6, // [6:8] is the sub-list for method output_type
	4, // [4:6] is the sub-list for method input_type
	4, // [4:4] is the sub-list for extension type_name
	4, // [4:4] is the sub-list for extension extendee
	0, // [0:4] is the sub-list for field type_name
}

func init() { file_vision_proto_init() }
func file_vision_proto_init() {
	if File_vision_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_vision_proto_rawDesc), len(file_vision_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_vision_proto_goTypes,
		DependencyIndexes: file_vision_proto_depIdxs,
		EnumInfos:         file_vision_proto_enumTypes,
		MessageInfos:      file_vision_proto_msgTypes,
	}.Build()
	File_vision_proto = out.File
	file_vision_proto_goTypes = nil
	file_vision_proto_depIdxs = nil
}
