// Copyright 2026 Peter Edge
//
// All rights reserved.

package flex

import "strings"

// The FLEX dialect grows new vocabulary over time, so every code table below
// reserves an Unknown member: an unrecognized token decodes to Unknown rather
// than failing the statement. The raw token is surfaced via the parser's
// logger for alerting.

// AssetCategory is the instrument class of a record (stock, option, future, etc.).
type AssetCategory string

// Asset categories.
const (
	AssetCategoryStock               AssetCategory = "STK"
	AssetCategoryOption              AssetCategory = "OPT"
	AssetCategoryFuture              AssetCategory = "FUT"
	AssetCategoryFutureOption        AssetCategory = "FOP"
	AssetCategoryCash                AssetCategory = "CASH"
	AssetCategoryBond                AssetCategory = "BOND"
	AssetCategoryBill                AssetCategory = "BILL"
	AssetCategoryCommodity           AssetCategory = "CMDTY"
	AssetCategoryCFD                 AssetCategory = "CFD"
	AssetCategoryForexCFD            AssetCategory = "FXCFD"
	AssetCategoryWarrant             AssetCategory = "WAR"
	AssetCategoryFund                AssetCategory = "FUND"
	AssetCategoryStructuredProduct   AssetCategory = "IOPT"
	AssetCategoryBag                 AssetCategory = "BAG"
	AssetCategoryCrypto              AssetCategory = "CRYPTO"
	AssetCategoryMetal               AssetCategory = "METAL"
	AssetCategoryExchangeForPhysical AssetCategory = "EFP"
	AssetCategoryEventContract       AssetCategory = "EC"
	AssetCategoryIndex               AssetCategory = "IND"
	AssetCategoryUnknown             AssetCategory = "UNKNOWN"
)

var assetCategories = map[string]AssetCategory{
	"STK":    AssetCategoryStock,
	"OPT":    AssetCategoryOption,
	"FUT":    AssetCategoryFuture,
	"FOP":    AssetCategoryFutureOption,
	"CASH":   AssetCategoryCash,
	"BOND":   AssetCategoryBond,
	"BILL":   AssetCategoryBill,
	"CMDTY":  AssetCategoryCommodity,
	"CFD":    AssetCategoryCFD,
	"FXCFD":  AssetCategoryForexCFD,
	"WAR":    AssetCategoryWarrant,
	"FUND":   AssetCategoryFund,
	"IOPT":   AssetCategoryStructuredProduct,
	"BAG":    AssetCategoryBag,
	"CRYPTO": AssetCategoryCrypto,
	"METAL":  AssetCategoryMetal,
	"EFP":    AssetCategoryExchangeForPhysical,
	"EC":     AssetCategoryEventContract,
	"IND":    AssetCategoryIndex,
}

// ParseAssetCategory parses an assetCategory attribute value, returning
// AssetCategoryUnknown for unrecognized values.
func ParseAssetCategory(value string) AssetCategory {
	if c, ok := assetCategories[value]; ok {
		return c
	}
	return AssetCategoryUnknown
}

// BuySell is the side of a trade.
type BuySell string

// Trade sides.
const (
	BuySellBuy        BuySell = "BUY"
	BuySellSell       BuySell = "SELL"
	BuySellCancelBuy  BuySell = "BUY (Ca.)"
	BuySellCancelSell BuySell = "SELL (Ca.)"
	BuySellUnknown    BuySell = "UNKNOWN"
)

var buySells = map[string]BuySell{
	"BUY":        BuySellBuy,
	"SELL":       BuySellSell,
	"BUY (Ca.)":  BuySellCancelBuy,
	"SELL (Ca.)": BuySellCancelSell,
}

// ParseBuySell parses a buySell attribute value, returning BuySellUnknown
// for unrecognized values.
func ParseBuySell(value string) BuySell {
	if c, ok := buySells[value]; ok {
		return c
	}
	return BuySellUnknown
}

// OpenClose indicates whether a trade opens or closes a position.
type OpenClose string

// Open/close indicators. OpenCloseBoth is a same-day close-and-reopen.
const (
	OpenCloseOpen    OpenClose = "O"
	OpenCloseClose   OpenClose = "C"
	OpenCloseBoth    OpenClose = "C;O"
	OpenCloseUnknown OpenClose = "UNKNOWN"
)

var openCloses = map[string]OpenClose{
	"O":   OpenCloseOpen,
	"C":   OpenCloseClose,
	"C;O": OpenCloseBoth,
}

// ParseOpenClose parses an openCloseIndicator attribute value, returning
// OpenCloseUnknown for unrecognized values.
func ParseOpenClose(value string) OpenClose {
	if c, ok := openCloses[value]; ok {
		return c
	}
	return OpenCloseUnknown
}

// OrderType is the order type of an execution.
type OrderType string

// Order types.
const (
	OrderTypeMarket          OrderType = "MKT"
	OrderTypeLimit           OrderType = "LMT"
	OrderTypeStop            OrderType = "STP"
	OrderTypeStopLimit       OrderType = "STP LMT"
	OrderTypeMarketOnClose   OrderType = "MOC"
	OrderTypeLimitOnClose    OrderType = "LOC"
	OrderTypeMarketIfTouched OrderType = "MIT"
	OrderTypeLimitIfTouched  OrderType = "LIT"
	OrderTypeTrailingStop    OrderType = "TRAIL"
	OrderTypeTrailingLimit   OrderType = "TRAIL LMT"
	OrderTypeMidPrice        OrderType = "MIDPX"
	OrderTypeRelative        OrderType = "REL"
	OrderTypeMultiple        OrderType = "MULTIPLE"
	OrderTypeUnknown         OrderType = "UNKNOWN"
)

var orderTypes = map[string]OrderType{
	"MKT":       OrderTypeMarket,
	"LMT":       OrderTypeLimit,
	"STP":       OrderTypeStop,
	"STP LMT":   OrderTypeStopLimit,
	"MOC":       OrderTypeMarketOnClose,
	"LOC":       OrderTypeLimitOnClose,
	"MIT":       OrderTypeMarketIfTouched,
	"LIT":       OrderTypeLimitIfTouched,
	"TRAIL":     OrderTypeTrailingStop,
	"TRAIL LMT": OrderTypeTrailingLimit,
	"MIDPX":     OrderTypeMidPrice,
	"REL":       OrderTypeRelative,
	"MULTIPLE":  OrderTypeMultiple,
}

// ParseOrderType parses an orderType attribute value, returning
// OrderTypeUnknown for unrecognized values.
func ParseOrderType(value string) OrderType {
	if c, ok := orderTypes[value]; ok {
		return c
	}
	return OrderTypeUnknown
}

// PutCall distinguishes puts from calls.
type PutCall string

// Put/call values.
const (
	PutCallPut     PutCall = "P"
	PutCallCall    PutCall = "C"
	PutCallUnknown PutCall = "UNKNOWN"
)

// ParsePutCall parses a putCall attribute value, returning PutCallUnknown
// for unrecognized values.
func ParsePutCall(value string) PutCall {
	switch value {
	case "P":
		return PutCallPut
	case "C":
		return PutCallCall
	default:
		return PutCallUnknown
	}
}

// LongShort is the side of a position.
type LongShort string

// Position sides.
const (
	LongShortLong    LongShort = "Long"
	LongShortShort   LongShort = "Short"
	LongShortUnknown LongShort = "UNKNOWN"
)

// ParseLongShort parses a side attribute value, returning LongShortUnknown
// for unrecognized values.
func ParseLongShort(value string) LongShort {
	switch value {
	case "Long":
		return LongShortLong
	case "Short":
		return LongShortShort
	default:
		return LongShortUnknown
	}
}

// TradeType classifies how a trade was booked.
type TradeType string

// Trade transaction types.
const (
	TradeTypeExchTrade       TradeType = "ExchTrade"
	TradeTypeBookTrade       TradeType = "BookTrade"
	TradeTypeDvpTrade        TradeType = "DvpTrade"
	TradeTypeFracShare       TradeType = "FracShare"
	TradeTypeFracShareCancel TradeType = "FracShareCancel"
	TradeTypeAdjustment      TradeType = "Adjustment"
	TradeTypeTradeCorrect    TradeType = "TradeCorrect"
	TradeTypeTradeCancel     TradeType = "TradeCancel"
	TradeTypeIBKRTrade       TradeType = "IBKRTrade"
	TradeTypeUnknown         TradeType = "UNKNOWN"
)

var tradeTypes = map[string]TradeType{
	"ExchTrade":       TradeTypeExchTrade,
	"BookTrade":       TradeTypeBookTrade,
	"DvpTrade":        TradeTypeDvpTrade,
	"FracShare":       TradeTypeFracShare,
	"FracShareCancel": TradeTypeFracShareCancel,
	"Adjustment":      TradeTypeAdjustment,
	"TradeCorrect":    TradeTypeTradeCorrect,
	"TradeCancel":     TradeTypeTradeCancel,
	"IBKRTrade":       TradeTypeIBKRTrade,
}

// ParseTradeType parses a transactionType attribute value, returning
// TradeTypeUnknown for unrecognized values.
func ParseTradeType(value string) TradeType {
	if c, ok := tradeTypes[value]; ok {
		return c
	}
	return TradeTypeUnknown
}

// CashTransactionType classifies a cash movement.
type CashTransactionType string

// Cash transaction types.
const (
	CashTransactionTypeDepositsWithdrawals      CashTransactionType = "Deposits & Withdrawals"
	CashTransactionTypeDividends                CashTransactionType = "Dividends"
	CashTransactionTypeWithholdingTax           CashTransactionType = "WithholdingTax"
	CashTransactionTypeBrokerInterestPaid       CashTransactionType = "Broker Interest Paid"
	CashTransactionTypeBrokerInterestReceived   CashTransactionType = "Broker Interest Received"
	CashTransactionTypeBondInterestReceived     CashTransactionType = "Bond Interest Received"
	CashTransactionTypeBondInterestPaid         CashTransactionType = "Bond Interest Paid"
	CashTransactionTypeBondInterest             CashTransactionType = "Bond Interest"
	CashTransactionTypePaymentInLieuOfDividends CashTransactionType = "Payment In Lieu Of Dividends"
	CashTransactionTypeOtherFees                CashTransactionType = "Other Fees"
	CashTransactionTypeCommissionAdjustments    CashTransactionType = "Commission Adjustments"
	CashTransactionTypeAdvisorFees              CashTransactionType = "Advisor Fees"
	CashTransactionTypeCashReceipts             CashTransactionType = "Cash Receipts"
	CashTransactionTypeFees                     CashTransactionType = "Fees"
	CashTransactionTypeUnknown                  CashTransactionType = "UNKNOWN"
)

var cashTransactionTypes = map[string]CashTransactionType{
	"Deposits & Withdrawals":       CashTransactionTypeDepositsWithdrawals,
	"Dividends":                    CashTransactionTypeDividends,
	"WithholdingTax":               CashTransactionTypeWithholdingTax,
	"Broker Interest Paid":         CashTransactionTypeBrokerInterestPaid,
	"Broker Interest Received":     CashTransactionTypeBrokerInterestReceived,
	"Bond Interest Received":       CashTransactionTypeBondInterestReceived,
	"Bond Interest Paid":           CashTransactionTypeBondInterestPaid,
	"Bond Interest":                CashTransactionTypeBondInterest,
	"Payment In Lieu Of Dividends": CashTransactionTypePaymentInLieuOfDividends,
	"Other Fees":                   CashTransactionTypeOtherFees,
	"Commission Adjustments":       CashTransactionTypeCommissionAdjustments,
	"Advisor Fees":                 CashTransactionTypeAdvisorFees,
	"Cash Receipts":                CashTransactionTypeCashReceipts,
	"Fees":                         CashTransactionTypeFees,
}

// ParseCashTransactionType parses a cash transaction type attribute value,
// returning CashTransactionTypeUnknown for unrecognized values.
func ParseCashTransactionType(value string) CashTransactionType {
	if c, ok := cashTransactionTypes[value]; ok {
		return c
	}
	return CashTransactionTypeUnknown
}

// CorporateActionType classifies a corporate action event.
type CorporateActionType string

// Corporate action types.
const (
	CorporateActionTypeStockSplit            CorporateActionType = "Stock Split"
	CorporateActionTypeForwardSplitIssue     CorporateActionType = "Forward Split (Issue)"
	CorporateActionTypeForwardSplit          CorporateActionType = "Forward Split"
	CorporateActionTypeReverseSplit          CorporateActionType = "Reverse Split"
	CorporateActionTypeMerger                CorporateActionType = "Merger"
	CorporateActionTypeSpinoff               CorporateActionType = "Spinoff"
	CorporateActionTypeContractSpinoff       CorporateActionType = "Contract Spinoff"
	CorporateActionTypeStockDividend         CorporateActionType = "Stock Dividend"
	CorporateActionTypeCashDividend          CorporateActionType = "Cash Dividend"
	CorporateActionTypeChoiceDividend        CorporateActionType = "Choice Dividend"
	CorporateActionTypeChoiceDivDelivery     CorporateActionType = "Choice Dividend (Delivery)"
	CorporateActionTypeChoiceDivIssue        CorporateActionType = "Choice Dividend (Issue)"
	CorporateActionTypeDivRightsIssue        CorporateActionType = "Dividend Rights Issue"
	CorporateActionTypeExpiredDivRight       CorporateActionType = "Expired Dividend Right"
	CorporateActionTypeDelisted              CorporateActionType = "Delisted"
	CorporateActionTypeDelistWorthless       CorporateActionType = "Delist (Worthless)"
	CorporateActionTypeNameChange            CorporateActionType = "Name Change"
	CorporateActionTypeSymbolChange          CorporateActionType = "Symbol Change"
	CorporateActionTypeIssueChange           CorporateActionType = "Issue Change"
	CorporateActionTypeBondConversion        CorporateActionType = "Bond Conversion"
	CorporateActionTypeBondMaturity          CorporateActionType = "Bond Maturity"
	CorporateActionTypeTBillMaturity         CorporateActionType = "T-Bill Maturity"
	CorporateActionTypeConvertibleIssue      CorporateActionType = "Convertible Issue"
	CorporateActionTypeCouponPayment         CorporateActionType = "Coupon Payment"
	CorporateActionTypeContractConsolidation CorporateActionType = "Contract Consolidation"
	CorporateActionTypeContractSplit         CorporateActionType = "Contract Split"
	CorporateActionTypeCFDTermination        CorporateActionType = "CFD Termination"
	CorporateActionTypeFeeAllocation         CorporateActionType = "Fee Allocation"
	CorporateActionTypeRightsIssue           CorporateActionType = "Rights Issue"
	CorporateActionTypeSubscribeRights       CorporateActionType = "Subscribe Rights"
	CorporateActionTypeTender                CorporateActionType = "Tender"
	CorporateActionTypeTenderIssue           CorporateActionType = "Tender (Issue)"
	CorporateActionTypeProxyVote             CorporateActionType = "Proxy Vote"
	CorporateActionTypeGenericVoluntary      CorporateActionType = "Generic Voluntary"
	CorporateActionTypeAssetPurchase         CorporateActionType = "Asset Purchase"
	CorporateActionTypePurchaseIssue         CorporateActionType = "Purchase (Issue)"
	CorporateActionTypeUnknown               CorporateActionType = "UNKNOWN"
)

var corporateActionTypes = map[string]CorporateActionType{
	"Stock Split":                CorporateActionTypeStockSplit,
	"Forward Split (Issue)":      CorporateActionTypeForwardSplitIssue,
	"Forward Split":              CorporateActionTypeForwardSplit,
	"Reverse Split":              CorporateActionTypeReverseSplit,
	"Merger":                     CorporateActionTypeMerger,
	"Spinoff":                    CorporateActionTypeSpinoff,
	"Contract Spinoff":           CorporateActionTypeContractSpinoff,
	"Stock Dividend":             CorporateActionTypeStockDividend,
	"Cash Dividend":              CorporateActionTypeCashDividend,
	"Choice Dividend":            CorporateActionTypeChoiceDividend,
	"Choice Dividend (Delivery)": CorporateActionTypeChoiceDivDelivery,
	"Choice Dividend (Issue)":    CorporateActionTypeChoiceDivIssue,
	"Dividend Rights Issue":      CorporateActionTypeDivRightsIssue,
	"Expired Dividend Right":     CorporateActionTypeExpiredDivRight,
	"Delisted":                   CorporateActionTypeDelisted,
	"Delist (Worthless)":         CorporateActionTypeDelistWorthless,
	"Name Change":                CorporateActionTypeNameChange,
	"Symbol Change":              CorporateActionTypeSymbolChange,
	"Issue Change":               CorporateActionTypeIssueChange,
	"Bond Conversion":            CorporateActionTypeBondConversion,
	"Bond Maturity":              CorporateActionTypeBondMaturity,
	"T-Bill Maturity":            CorporateActionTypeTBillMaturity,
	"Convertible Issue":          CorporateActionTypeConvertibleIssue,
	"Coupon Payment":             CorporateActionTypeCouponPayment,
	"Contract Consolidation":     CorporateActionTypeContractConsolidation,
	"Contract Split":             CorporateActionTypeContractSplit,
	"CFD Termination":            CorporateActionTypeCFDTermination,
	"Fee Allocation":             CorporateActionTypeFeeAllocation,
	"Rights Issue":               CorporateActionTypeRightsIssue,
	"Subscribe Rights":           CorporateActionTypeSubscribeRights,
	"Tender":                     CorporateActionTypeTender,
	"Tender (Issue)":             CorporateActionTypeTenderIssue,
	"Proxy Vote":                 CorporateActionTypeProxyVote,
	"Generic Voluntary":          CorporateActionTypeGenericVoluntary,
	"Asset Purchase":             CorporateActionTypeAssetPurchase,
	"Purchase (Issue)":           CorporateActionTypePurchaseIssue,
}

// ParseCorporateActionType parses a corporate action type attribute value,
// returning CorporateActionTypeUnknown for unrecognized values.
func ParseCorporateActionType(value string) CorporateActionType {
	if c, ok := corporateActionTypes[value]; ok {
		return c
	}
	return CorporateActionTypeUnknown
}

// TransactionCode is a trade classification code. Codes appear in notes
// attributes and can be combined (e.g., "C;W" for closing + wash sale).
type TransactionCode string

// Transaction codes.
const (
	TransactionCodeAssignment        TransactionCode = "A"
	TransactionCodeAdjustment        TransactionCode = "Adj"
	TransactionCodeAllocation        TransactionCode = "Al"
	TransactionCodeAutoExercise      TransactionCode = "Ae"
	TransactionCodeAutoFX            TransactionCode = "Af"
	TransactionCodeAwayTrade         TransactionCode = "Aw"
	TransactionCodeBuyIn             TransactionCode = "B"
	TransactionCodeBorrowFee         TransactionCode = "Bo"
	TransactionCodeCancelled         TransactionCode = "Ca"
	TransactionCodeClosing           TransactionCode = "C"
	TransactionCodeCashDelivery      TransactionCode = "Cd"
	TransactionCodeComplexPosition   TransactionCode = "Cp"
	TransactionCodeCorrection        TransactionCode = "Cr"
	TransactionCodeCrossing          TransactionCode = "Cs"
	TransactionCodeDualAgent         TransactionCode = "D"
	TransactionCodeETF               TransactionCode = "Et"
	TransactionCodeExpired           TransactionCode = "Ex"
	TransactionCodeExercise          TransactionCode = "O"
	TransactionCodeGuaranteed        TransactionCode = "G"
	TransactionCodeHighestCost       TransactionCode = "Hc"
	TransactionCodeHFInvestment      TransactionCode = "Hi"
	TransactionCodeHFRedemption      TransactionCode = "Hr"
	TransactionCodeInternalTransfer  TransactionCode = "I"
	TransactionCodeAffiliate         TransactionCode = "Ia"
	TransactionCodeInvestor          TransactionCode = "Iv"
	TransactionCodeMarginLiquidation TransactionCode = "L"
	TransactionCodeLIFO              TransactionCode = "Li"
	TransactionCodeLoan              TransactionCode = "Ln"
	TransactionCodeLongTermGain      TransactionCode = "Lt"
	TransactionCodeManualEntry       TransactionCode = "M"
	TransactionCodeMaxLoss           TransactionCode = "Ml"
	TransactionCodeMinLongTermGain   TransactionCode = "Mn"
	TransactionCodeMaxShortTermGain  TransactionCode = "Ms"
	TransactionCodeMinShortTermGain  TransactionCode = "Mi"
	TransactionCodeManualExercise    TransactionCode = "Mx"
	TransactionCodeOpening           TransactionCode = "P"
	TransactionCodePartial           TransactionCode = "Pt"
	TransactionCodeFracRiskless      TransactionCode = "Fr"
	TransactionCodeFracPrincipal     TransactionCode = "Fp"
	TransactionCodePriceImprovement  TransactionCode = "Pi"
	TransactionCodePostAccrual       TransactionCode = "Pa"
	TransactionCodePrincipal         TransactionCode = "Pr"
	TransactionCodeReinvestment      TransactionCode = "Re"
	TransactionCodeRedemption        TransactionCode = "Rd"
	TransactionCodeReopen            TransactionCode = "R"
	TransactionCodeReverse           TransactionCode = "Rv"
	TransactionCodeReimbursement     TransactionCode = "Ri"
	TransactionCodeSolicitedIB       TransactionCode = "Si"
	TransactionCodeSpecificLot       TransactionCode = "Sp"
	TransactionCodeSolicitedOther    TransactionCode = "So"
	TransactionCodeShortSettlement   TransactionCode = "Ss"
	TransactionCodeShortTermGain     TransactionCode = "St"
	TransactionCodeStockYield        TransactionCode = "Sy"
	TransactionCodeTransfer          TransactionCode = "T"
	TransactionCodeWashSale          TransactionCode = "W"
	TransactionCodeUnknown           TransactionCode = "UNKNOWN"
)

var transactionCodes = map[string]TransactionCode{
	"A":   TransactionCodeAssignment,
	"Adj": TransactionCodeAdjustment,
	"Al":  TransactionCodeAllocation,
	"Ae":  TransactionCodeAutoExercise,
	"Af":  TransactionCodeAutoFX,
	"Aw":  TransactionCodeAwayTrade,
	"B":   TransactionCodeBuyIn,
	"Bo":  TransactionCodeBorrowFee,
	"Ca":  TransactionCodeCancelled,
	"C":   TransactionCodeClosing,
	"Cd":  TransactionCodeCashDelivery,
	"Cp":  TransactionCodeComplexPosition,
	"Cr":  TransactionCodeCorrection,
	"Cs":  TransactionCodeCrossing,
	"D":   TransactionCodeDualAgent,
	"Et":  TransactionCodeETF,
	"Ex":  TransactionCodeExpired,
	"O":   TransactionCodeExercise,
	"G":   TransactionCodeGuaranteed,
	"Hc":  TransactionCodeHighestCost,
	"Hi":  TransactionCodeHFInvestment,
	"Hr":  TransactionCodeHFRedemption,
	"I":   TransactionCodeInternalTransfer,
	"Ia":  TransactionCodeAffiliate,
	"Iv":  TransactionCodeInvestor,
	"L":   TransactionCodeMarginLiquidation,
	"Li":  TransactionCodeLIFO,
	"Ln":  TransactionCodeLoan,
	"Lt":  TransactionCodeLongTermGain,
	"M":   TransactionCodeManualEntry,
	"Ml":  TransactionCodeMaxLoss,
	"Mn":  TransactionCodeMinLongTermGain,
	"Ms":  TransactionCodeMaxShortTermGain,
	"Mi":  TransactionCodeMinShortTermGain,
	"Mx":  TransactionCodeManualExercise,
	"P":   TransactionCodeOpening,
	"Pt":  TransactionCodePartial,
	"Fr":  TransactionCodeFracRiskless,
	"Fp":  TransactionCodeFracPrincipal,
	"Pi":  TransactionCodePriceImprovement,
	"Pa":  TransactionCodePostAccrual,
	"Pr":  TransactionCodePrincipal,
	"Re":  TransactionCodeReinvestment,
	"Rd":  TransactionCodeRedemption,
	"R":   TransactionCodeReopen,
	"Rv":  TransactionCodeReverse,
	"Ri":  TransactionCodeReimbursement,
	"Si":  TransactionCodeSolicitedIB,
	"Sp":  TransactionCodeSpecificLot,
	"So":  TransactionCodeSolicitedOther,
	"Ss":  TransactionCodeShortSettlement,
	"St":  TransactionCodeShortTermGain,
	"Sy":  TransactionCodeStockYield,
	"T":   TransactionCodeTransfer,
	"W":   TransactionCodeWashSale,
}

// ParseTransactionCode parses a single transaction code token, returning
// TransactionCodeUnknown for unrecognized values.
func ParseTransactionCode(value string) TransactionCode {
	if c, ok := transactionCodes[value]; ok {
		return c
	}
	return TransactionCodeUnknown
}

// TransferType is the mechanism of a position transfer.
type TransferType string

// Transfer types.
const (
	TransferTypeACATS    TransferType = "ACATS"
	TransferTypeATON     TransferType = "ATON"
	TransferTypeFOP      TransferType = "FOP"
	TransferTypeInternal TransferType = "INTERNAL"
	TransferTypeDVP      TransferType = "DVP"
	TransferTypeDRS      TransferType = "DRS"
	TransferTypeUnknown  TransferType = "UNKNOWN"
)

var transferTypes = map[string]TransferType{
	"ACATS":    TransferTypeACATS,
	"ATON":     TransferTypeATON,
	"FOP":      TransferTypeFOP,
	"INTERNAL": TransferTypeInternal,
	"DVP":      TransferTypeDVP,
	"DRS":      TransferTypeDRS,
}

// ParseTransferType parses a transfer type attribute value, returning
// TransferTypeUnknown for unrecognized values.
func ParseTransferType(value string) TransferType {
	if c, ok := transferTypes[value]; ok {
		return c
	}
	return TransferTypeUnknown
}

// OptionAction is the lifecycle event of an option position.
type OptionAction string

// Option actions.
const (
	OptionActionAssignment     OptionAction = "Assignment"
	OptionActionExercise       OptionAction = "Exercise"
	OptionActionExpiration     OptionAction = "Expiration"
	OptionActionExpire         OptionAction = "Expire"
	OptionActionCashSettlement OptionAction = "Cash Settlement"
	OptionActionBuy            OptionAction = "Buy"
	OptionActionSell           OptionAction = "Sell"
	OptionActionUnknown        OptionAction = "UNKNOWN"
)

var optionActions = map[string]OptionAction{
	"Assignment":      OptionActionAssignment,
	"Exercise":        OptionActionExercise,
	"Expiration":      OptionActionExpiration,
	"Expire":          OptionActionExpire,
	"Cash Settlement": OptionActionCashSettlement,
	"Buy":             OptionActionBuy,
	"Sell":            OptionActionSell,
}

// ParseOptionAction parses an option action type attribute value, returning
// OptionActionUnknown for unrecognized values.
func ParseOptionAction(value string) OptionAction {
	if c, ok := optionActions[value]; ok {
		return c
	}
	return OptionActionUnknown
}

// SecurityIDType is the identifier scheme of a securityID attribute.
type SecurityIDType string

// Security identifier types.
const (
	SecurityIDTypeCUSIP   SecurityIDType = "CUSIP"
	SecurityIDTypeISIN    SecurityIDType = "ISIN"
	SecurityIDTypeFIGI    SecurityIDType = "FIGI"
	SecurityIDTypeSEDOL   SecurityIDType = "SEDOL"
	SecurityIDTypeUnknown SecurityIDType = "UNKNOWN"
)

var securityIDTypes = map[string]SecurityIDType{
	"CUSIP": SecurityIDTypeCUSIP,
	"ISIN":  SecurityIDTypeISIN,
	"FIGI":  SecurityIDTypeFIGI,
	"SEDOL": SecurityIDTypeSEDOL,
}

// ParseSecurityIDType parses a securityIDType attribute value, returning
// SecurityIDTypeUnknown for unrecognized values.
func ParseSecurityIDType(value string) SecurityIDType {
	if c, ok := securityIDTypes[value]; ok {
		return c
	}
	return SecurityIDTypeUnknown
}

// SubCategory refines the asset category (e.g., ETF vs common stock).
type SubCategory string

// Security sub-categories.
const (
	SubCategoryETF                      SubCategory = "ETF"
	SubCategoryADR                      SubCategory = "ADR"
	SubCategoryREIT                     SubCategory = "REIT"
	SubCategoryPreferred                SubCategory = "Preferred"
	SubCategoryCommon                   SubCategory = "Common"
	SubCategoryDepositaryReceipt        SubCategory = "DR"
	SubCategoryGDR                      SubCategory = "GDR"
	SubCategoryLimitedPartnership       SubCategory = "LP"
	SubCategoryMasterLimitedPartnership SubCategory = "MLP"
	SubCategoryRight                    SubCategory = "Right"
	SubCategoryUnit                     SubCategory = "Unit"
	SubCategoryWhenIssued               SubCategory = "WI"
	SubCategoryTracking                 SubCategory = "Tracking"
	SubCategoryClosedEndFund            SubCategory = "CEF"
	SubCategoryUnknown                  SubCategory = "UNKNOWN"
)

var subCategories = map[string]SubCategory{
	"ETF":       SubCategoryETF,
	"ADR":       SubCategoryADR,
	"REIT":      SubCategoryREIT,
	"Preferred": SubCategoryPreferred,
	"Common":    SubCategoryCommon,
	"DR":        SubCategoryDepositaryReceipt,
	"GDR":       SubCategoryGDR,
	"LP":        SubCategoryLimitedPartnership,
	"MLP":       SubCategoryMasterLimitedPartnership,
	"Right":     SubCategoryRight,
	"Unit":      SubCategoryUnit,
	"WI":        SubCategoryWhenIssued,
	"Tracking":  SubCategoryTracking,
	"CEF":       SubCategoryClosedEndFund,
}

// ParseSubCategory parses a subCategory attribute value, returning
// SubCategoryUnknown for unrecognized values.
func ParseSubCategory(value string) SubCategory {
	if c, ok := subCategories[value]; ok {
		return c
	}
	return SubCategoryUnknown
}

// LevelOfDetail is the reporting granularity of a record.
type LevelOfDetail string

// Levels of detail. The dialect has used both mixed and upper case for
// these tokens across schema versions, so the lookup is case-insensitive.
const (
	LevelOfDetailSummary   LevelOfDetail = "SUMMARY"
	LevelOfDetailDetail    LevelOfDetail = "DETAIL"
	LevelOfDetailExecution LevelOfDetail = "EXECUTION"
	LevelOfDetailOrder     LevelOfDetail = "ORDER"
	LevelOfDetailLot       LevelOfDetail = "LOT"
	LevelOfDetailClosedLot LevelOfDetail = "CLOSED_LOT"
	LevelOfDetailUnknown   LevelOfDetail = "UNKNOWN"
)

var levelsOfDetail = map[string]LevelOfDetail{
	"SUMMARY":    LevelOfDetailSummary,
	"DETAIL":     LevelOfDetailDetail,
	"EXECUTION":  LevelOfDetailExecution,
	"ORDER":      LevelOfDetailOrder,
	"LOT":        LevelOfDetailLot,
	"CLOSED_LOT": LevelOfDetailClosedLot,
}

// ParseLevelOfDetail parses a levelOfDetail attribute value, returning
// LevelOfDetailUnknown for unrecognized values.
func ParseLevelOfDetail(value string) LevelOfDetail {
	if c, ok := levelsOfDetail[strings.ToUpper(value)]; ok {
		return c
	}
	return LevelOfDetailUnknown
}
