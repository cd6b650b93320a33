package javascript

// runtimeSource is the fixed descriptor interpreter embedded verbatim in every
// artifact that enables runtime typechecking. It must agree, case by case,
// with descriptor.Validate: same dereference loop, same union backtracking in
// declared order, same single error kind citing the expected descriptor and
// the offending value.
const runtimeSource = `function invalidValue(typ, val, key = "") {
    const where = key === "" ? "" : " for key \"" + key + "\"";
    throw Error("Invalid value" + where + ": expected " + typeDescription(typ) + ", got " + JSON.stringify(val));
}

function typeDescription(typ) {
    if (typ === "noExtraProps") return "no additional properties";
    if (typeof typ === "string") return typ;
    if (typ.ref !== undefined) return typ.ref;
    if (typ.enumCases !== undefined) {
        return "one of [" + typ.enumCases.map((c) => JSON.stringify(c)).join(", ") + "]";
    }
    if (typ.unionMembers !== undefined) {
        return typ.unionMembers.map(typeDescription).join(" | ");
    }
    if (typ.arrayItems !== undefined) return typeDescription(typ.arrayItems) + "[]";
    if (typ.mapValues !== undefined) return "map<" + typeDescription(typ.mapValues) + ">";
    if (typ.props !== undefined) return "object{" + Object.keys(typ.props).join(", ") + "}";
    return JSON.stringify(typ);
}

function validate(typ, val, key = "") {
    while (typ !== null && typeof typ === "object" && typ.ref !== undefined) {
        typ = typeMap[typ.ref];
    }
    if (typ === "any") return val;
    if (typ === "null") return val === null ? val : invalidValue(typ, val, key);
    if (typ === "undefined") return val === undefined ? val : invalidValue(typ, val, key);
    if (typ === "never" || typ === "noExtraProps") return invalidValue(typ, val, key);
    if (typ === "boolean") return typeof val === "boolean" ? val : invalidValue(typ, val, key);
    if (typ === "integer") {
        return typeof val === "number" && Number.isInteger(val) ? val : invalidValue(typ, val, key);
    }
    if (typ === "double") return typeof val === "number" ? val : invalidValue(typ, val, key);
    if (typ === "string") return typeof val === "string" ? val : invalidValue(typ, val, key);
    if (typ.enumCases !== undefined) {
        return typ.enumCases.indexOf(val) !== -1 ? val : invalidValue(typ, val, key);
    }
    if (typ.unionMembers !== undefined) {
        for (const member of typ.unionMembers) {
            try {
                return validate(member, val, key);
            } catch (_) {}
        }
        return invalidValue(typ, val, key);
    }
    if (typ.arrayItems !== undefined) {
        if (!Array.isArray(val)) return invalidValue(typ, val, key);
        return val.map((el) => validate(typ.arrayItems, el, key));
    }
    if (typ.mapValues !== undefined) {
        if (val === null || typeof val !== "object" || Array.isArray(val)) {
            return invalidValue(typ, val, key);
        }
        const result = {};
        for (const k of Object.keys(val)) {
            result[k] = validate(typ.mapValues, val[k], k);
        }
        return result;
    }
    if (typ.props !== undefined) {
        if (val === null || typeof val !== "object" || Array.isArray(val)) {
            return invalidValue(typ, val, key);
        }
        const result = {};
        for (const k of Object.keys(typ.props)) {
            const v = validate(typ.props[k], val[k], k);
            if (v !== undefined) result[k] = v;
        }
        for (const k of Object.keys(val)) {
            if (!Object.prototype.hasOwnProperty.call(typ.props, k)) {
                result[k] = validate(typ.additional, val[k], k);
            }
        }
        return result;
    }
    return invalidValue(typ, val, key);
}

function r(name) {
    return { ref: name };
}

function a(items) {
    return { arrayItems: items };
}

function u(...members) {
    return { unionMembers: members };
}

function o(props, additional) {
    return { props, additional };
}

function m(values) {
    return { mapValues: values };
}

function e(...cases) {
    return { enumCases: cases };
}
`
