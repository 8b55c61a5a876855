package commerce

const assetFragment = `
fragment Asset on Asset {
  id
  preview
}`

const orderFragment = `
fragment ActiveOrder on Order {
  id
  code
  state
  active
  createdAt
  orderPlacedAt
  currencyCode
  totalQuantity
  subTotal
  subTotalWithTax
  shipping
  shippingWithTax
  total
  totalWithTax
  couponCodes
  discounts { description amountWithTax type adjustmentSource }
  customFields { loyaltyPointsUsed }
  customer { id firstName lastName emailAddress }
  shippingAddress { fullName company streetLine1 streetLine2 city province postalCode countryCode phoneNumber }
  billingAddress { fullName company streetLine1 streetLine2 city province postalCode countryCode phoneNumber }
  shippingLines { shippingMethod { id code name } priceWithTax }
  payments { id method amount state transactionId }
  lines {
    id
    quantity
    unitPrice
    unitPriceWithTax
    linePrice
    linePriceWithTax
    customFields { couponCode }
    featuredAsset { ...Asset }
    productVariant {
      id
      name
      sku
      price
      priceWithTax
      currencyCode
      stockLevel
      product { id name slug }
    }
  }
}` + assetFragment

const errorResultFragment = `
fragment ErrorResult on ErrorResult {
  __typename
  errorCode
  message
}`

const customerFragment = `
fragment Customer on Customer {
  id
  title
  firstName
  lastName
  emailAddress
  phoneNumber
}`

const addressFragment = `
fragment Address on Address {
  id
  fullName
  company
  streetLine1
  streetLine2
  city
  province
  postalCode
  country { code name }
  phoneNumber
  defaultShippingAddress
  defaultBillingAddress
}`

const promotionFragment = `
fragment Promotion on Promotion {
  id
  name
  couponCode
  enabled
  startsAt
  endsAt
  conditions { code args { name value } }
  actions { code args { name value } }
}`
