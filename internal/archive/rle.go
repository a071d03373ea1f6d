package archive

// maxRun is the longest run a single RLE pair can describe.
const maxRun = 255

// RLEEncode encodes data as (count, byte) pairs with 1 <= count <= 255.
func RLEEncode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	encoded := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		count := 1
		for i+count < len(data) && data[i+count] == data[i] && count < maxRun {
			count++
		}
		encoded = append(encoded, byte(count), data[i])
		i += count
	}
	return encoded
}

// RLEDecode expands (count, byte) pairs. A trailing unpaired byte is ignored.
func RLEDecode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	var decoded []byte
	for i := 0; i+1 < len(data); i += 2 {
		count, value := int(data[i]), data[i+1]
		for j := 0; j < count; j++ {
			decoded = append(decoded, value)
		}
	}
	return decoded
}
