package po

// Field names a semantic PO column.
type Field string

const (
	FieldSKU           Field = "sku"
	FieldQty           Field = "qty"
	FieldDescriptionEN Field = "description_en"
	FieldDescriptionKR Field = "description_kr"
	FieldBarcode       Field = "barcode"
	FieldUnitPrice     Field = "unit_price"
	FieldAmount        Field = "amount"
	FieldCurrency      Field = "currency"
	FieldHSCode        Field = "hs_code"
)

// Fields lists every field in reporting order.
var Fields = []Field{
	FieldSKU,
	FieldQty,
	FieldDescriptionEN,
	FieldDescriptionKR,
	FieldBarcode,
	FieldUnitPrice,
	FieldAmount,
	FieldCurrency,
	FieldHSCode,
}

// Candidates maps each field to its accepted header spellings, highest
// priority first. Order matters for both exact and partial matching.
type Candidates map[Field][]string

// DefaultCandidates returns the header spellings seen across partner PO layouts.
func DefaultCandidates() Candidates {
	return Candidates{
		FieldSKU: {"SKU ID", "SKU_ID", "SKUID", "SKU", "ITEM CODE", "ITEM_CODE"},
		FieldQty: {
			"TOTAL PRODUCT QTY",
			"ORDER QUANTITIES",
			"ORDER QTY",
			"QTY",
			"QUANTITY",
			"수량",
		},
		FieldDescriptionEN: {
			"Product Name_EN",
			"PRODUCT NAME_EN",
			"ENGLISH NAME",
			"DESCRIPTION_EN",
			"PRODUCT NAME",
			"DESCRIPTION",
		},
		FieldDescriptionKR: {
			"Product Name_KR",
			"PRODUCT NAME_KR",
			"상품명",
			"KOREAN NAME",
			"ITEM NAME",
		},
		FieldBarcode: {"GTIN-8 CODE", "BARCODE", "EAN", "UPC"},
		FieldUnitPrice: {
			"Supply Price",
			"SUPPLY PRICE",
			"FOB",
			"UNIT PRICE",
			"PRICE",
			"단가",
			"공급가",
			"FOB PRICE",
		},
		FieldAmount: {
			"AMOUNT",
			"TOTAL AMOUNT",
			"AMOUNT(KRW)",
			"AMOUNT (KRW)",
			"AMOUNT(USD)",
			"AMOUNT (USD)",
			"금액",
			"TOTAL",
		},
		FieldCurrency: {"CURRENCY", "통화", "CURR"},
		FieldHSCode:   {"HS CODE", "HS_CODE", "HSCODE", "HS CODE(TARIFF)", "TARIFF CODE"},
	}
}
