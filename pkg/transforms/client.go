package transforms

var transforms []*TransformDefinition

func SetupClient() {
	// Velaris mainline
	transforms = append(transforms, &TransformDefinition{
		Match: map[string]string{
			"Carrier": "VL",
		},
		Data: map[string]interface{}{
			"CarrierName": "Velaris Airways",
		},
	})

	// Partner carriers
	transforms = append(transforms, &TransformDefinition{
		Match: map[string]string{
			"Carrier": "MX",
		},
		Data: map[string]interface{}{
			"CarrierName": "Meridian Express",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Match: map[string]string{
			"Carrier": "KP",
		},
		Data: map[string]interface{}{
			"CarrierName": "Kestrel Pacific",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Match: map[string]string{
			"Carrier": "AJ",
		},
		Data: map[string]interface{}{
			"CarrierName": "Aurora Jet",
		},
	})
}
